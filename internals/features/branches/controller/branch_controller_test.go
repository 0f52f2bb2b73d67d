package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	branchController "schoolms_backend/internals/features/branches/controller"
	"schoolms_backend/internals/testutil"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func branchApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := branchController.NewBranchController(db)
	app.Post("/branch/:adminID/create-branch", ctrl.CreateBranch)
	app.Patch("/branch/update-branch/:branchID", ctrl.UpdateBranch)
	app.Delete("/branch/:id", ctrl.DeleteBranches)
	return app
}

func sendJSON(t *testing.T, app *fiber.App, method, url string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(out, &env))
	return resp.StatusCode, env
}

func TestCreateBranchUnknownAdmin(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE admin_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"admin_id"}))

	status, env := sendJSON(t, branchApp(db), "POST", "/branch/9/create-branch", fiber.Map{
		"name":    "North Campus",
		"address": "4 Canal Bank",
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Admin not found", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBranch(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE admin_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"admin_id", "admin_name"}).AddRow(9, "Root"))
	mock.ExpectQuery(`INSERT INTO "branches"`).
		WillReturnRows(sqlmock.NewRows([]string{"branch_id"}).AddRow(3))

	status, env := sendJSON(t, branchApp(db), "POST", "/branch/9/create-branch", fiber.Map{
		"name":    "North Campus",
		"address": "4 Canal Bank",
	})

	require.Equal(t, fiber.StatusCreated, status, "body: %s", env.Message)

	var data struct {
		ID      uint   `json:"id"`
		Name    string `json:"name"`
		AdminID uint   `json:"adminId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, uint(3), data.ID)
	assert.Equal(t, "North Campus", data.Name)
	assert.Equal(t, uint(9), data.AdminID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBranchRejectsDuplicateNameAddressPair(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "branches" WHERE branch_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"branch_id", "branch_name", "branch_address", "branch_admin_id"}).
			AddRow(3, "North Campus", "4 Canal Bank", 9))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "branches" WHERE \(branch_id <> .+ AND branch_name = .+ AND branch_address = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	status, env := sendJSON(t, branchApp(db), "PATCH", "/branch/update-branch/3", fiber.Map{
		"name":    "Main Campus",
		"address": "12 Mall Road",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Branch with the same name and address already exists", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBranchIsSoft(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectExec(`UPDATE "branches" SET "branch_deleted_at"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, env := sendJSON(t, branchApp(db), "DELETE", "/branch/3", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

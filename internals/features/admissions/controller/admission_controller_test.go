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

	admissionController "schoolms_backend/internals/features/admissions/controller"
	"schoolms_backend/internals/testutil"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func admissionApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := admissionController.NewAdmissionController(db)
	app.Post("/admission/:branchID/register", ctrl.Register)
	return app
}

func postJSON(t *testing.T, app *fiber.App, url string, body interface{}) (int, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(out, &env))
	return resp.StatusCode, env
}

func admissionBody() fiber.Map {
	return fiber.Map{
		"parent": fiber.Map{
			"name":  "Ahmed Khan",
			"email": "ahmed@example.com",
			"phone": "0300-1234567",
			"cnic":  "12345-6789012-3",
		},
		"students": []fiber.Map{
			{
				"firstName": "Sara",
				"lastName":  "Khan",
				"age":       7,
				"classId":   2,
				"gradeId":   3,
				"feeCards": []fiber.Map{
					{
						"feeItems": []fiber.Map{
							{
								"feeType":     "tuition",
								"amount":      1500,
								"paymentType": "monthly",
								"dueDate":     "2026-09-10T00:00:00Z",
							},
							{
								"feeType":     "admission",
								"amount":      5000,
								"paymentType": "once",
								"dueDate":     "2026-09-10T00:00:00Z",
							},
						},
					},
				},
			},
		},
	}
}

func branchRow(id uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"branch_id", "branch_name", "branch_address", "branch_admin_id"}).
		AddRow(id, "Main Campus", "12 Mall Road", 1)
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestRegisterCreatesWholeGraphInOneTransaction(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "branches" WHERE branch_id = `).
		WillReturnRows(branchRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "parents" WHERE .*parent_cnic = `).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "grades" WHERE grade_id = .+ AND grade_class_id = `).
		WillReturnRows(countRows(1))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "parents"`).
		WillReturnRows(sqlmock.NewRows([]string{"parent_id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}).AddRow(21))
	mock.ExpectQuery(`INSERT INTO "fee_cards"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_card_id"}).AddRow(31))
	mock.ExpectQuery(`INSERT INTO "fee_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"fee_item_id"}).AddRow(41).AddRow(42))
	mock.ExpectCommit()

	status, env := postJSON(t, admissionApp(db), "/admission/5/register", admissionBody())

	require.Equal(t, fiber.StatusCreated, status, "body: %s", env.Message)
	assert.True(t, env.Success)

	var data struct {
		Parent struct {
			ID       uint   `json:"id"`
			BranchID uint   `json:"branchId"`
			CNIC     string `json:"cnic"`
		} `json:"parent"`
		Students []struct {
			ID       uint `json:"id"`
			ParentID uint `json:"parentId"`
			FeeCards []struct {
				ID       uint `json:"id"`
				FeeItems []struct {
					Status string `json:"status"`
				} `json:"feeItems"`
			} `json:"feeCards"`
		} `json:"students"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, uint(11), data.Parent.ID)
	assert.Equal(t, uint(5), data.Parent.BranchID)
	assert.Equal(t, "12345-6789012-3", data.Parent.CNIC)
	require.Len(t, data.Students, 1)
	assert.Equal(t, uint(11), data.Students[0].ParentID)
	require.Len(t, data.Students[0].FeeCards, 1)
	require.Len(t, data.Students[0].FeeCards[0].FeeItems, 2)
	// status defaults to unpaid when the payload leaves it out
	assert.Equal(t, "unpaid", data.Students[0].FeeCards[0].FeeItems[0].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateCNICIsConflict(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "branches" WHERE branch_id = `).
		WillReturnRows(branchRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "parents" WHERE .*parent_cnic = `).
		WillReturnRows(countRows(1))

	status, env := postJSON(t, admissionApp(db), "/admission/5/register", admissionBody())

	assert.Equal(t, fiber.StatusConflict, status)
	assert.False(t, env.Success)
	// no transaction was opened, no rows were written
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterUnknownGradeWritesNothing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "branches" WHERE branch_id = `).
		WillReturnRows(branchRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "parents" WHERE .*parent_cnic = `).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "grades" WHERE grade_id = .+ AND grade_class_id = `).
		WillReturnRows(countRows(0))

	status, env := postJSON(t, admissionApp(db), "/admission/5/register", admissionBody())

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRollsBackOnMidTransactionFailure(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "branches" WHERE branch_id = `).
		WillReturnRows(branchRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "parents" WHERE .*parent_cnic = `).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "grades" WHERE grade_id = .+ AND grade_class_id = `).
		WillReturnRows(countRows(1))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "parents"`).
		WillReturnRows(sqlmock.NewRows([]string{"parent_id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "students"`).
		WillReturnError(gorm.ErrInvalidData)
	mock.ExpectRollback()

	status, env := postJSON(t, admissionApp(db), "/admission/5/register", admissionBody())

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, env.Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterMissingBranchIsClientError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "branches" WHERE branch_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"branch_id"}))

	status, env := postJSON(t, admissionApp(db), "/admission/99/register", admissionBody())

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "branch not found", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterValidationFailureListsFields(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	body := admissionBody()
	body["students"] = []fiber.Map{}

	status, env := postJSON(t, admissionApp(db), "/admission/5/register", body)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

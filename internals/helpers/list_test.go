package helper_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	helper "schoolms_backend/internals/helpers"
	"schoolms_backend/internals/testutil"
)

type noteModel struct {
	NoteID        uint      `gorm:"primaryKey;column:note_id" json:"id"`
	NoteTitle     string    `gorm:"column:note_title" json:"title"`
	NoteBranchID  uint      `gorm:"column:note_branch_id" json:"branchId"`
	NoteCreatedAt time.Time `gorm:"column:note_created_at;autoCreateTime" json:"createdAt"`
}

func (noteModel) TableName() string { return "notes" }

func (m noteModel) PrimaryKey() uint    { return m.NoteID }
func (noteModel) PrimaryColumn() string { return "note_id" }

func noteListConfig() helper.ListConfig {
	return helper.ListConfig{
		SearchFields: []string{"note_title"},
		FilterFields: map[string]string{"branchId": "note_branch_id"},
		SortColumns: map[string]string{
			"createdAt": "note_created_at",
			"id":        "note_id",
		},
		DefaultSortBy:    "createdAt",
		DefaultSortOrder: "desc",
	}
}

type listPayload struct {
	Results    []noteModel       `json:"results"`
	Pagination helper.Pagination `json:"pagination"`
}

type listEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    listPayload `json:"data"`
}

func listApp(db *gorm.DB, cfg helper.ListConfig) *fiber.App {
	app := fiber.New()
	app.Get("/notes", func(c *fiber.Ctx) error {
		return helper.List[noteModel](c, db, cfg)
	})
	return app
}

func doList(t *testing.T, app *fiber.App, url string) (int, listEnvelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env listEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func noteRows(ids ...uint) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"note_id", "note_title"})
	for _, id := range ids {
		rows.AddRow(id, "note")
	}
	return rows
}

func TestListNormalModeTrimsExtraRow(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	// limit+1 rows come back, so there is another page
	mock.ExpectQuery(`SELECT \* FROM "notes"`).
		WillReturnRows(noteRows(10, 9, 8))

	status, env := doList(t, listApp(db, noteListConfig()), "/notes?limit=2")

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	require.Len(t, env.Data.Results, 2)
	assert.True(t, env.Data.Pagination.HasMore)
	require.NotNil(t, env.Data.Pagination.NextCursor)
	assert.Equal(t, uint(9), *env.Data.Pagination.NextCursor)
	assert.Equal(t, int64(5), env.Data.Pagination.TotalItems)
	assert.Equal(t, 3, env.Data.Pagination.TotalPages)
	assert.Equal(t, 2, env.Data.Pagination.ItemsPerPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNormalModeLastPage(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "notes"`).
		WillReturnRows(noteRows(2, 1))

	_, env := doList(t, listApp(db, noteListConfig()), "/notes?limit=10")

	assert.Len(t, env.Data.Results, 2)
	// nextCursor is null exactly when hasMore is false
	assert.False(t, env.Data.Pagination.HasMore)
	assert.Nil(t, env.Data.Pagination.NextCursor)
	assert.Equal(t, 1, env.Data.Pagination.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSearchModeSinglePage(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notes" WHERE .*note_title ILIKE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(40))
	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE .*note_title ILIKE`).
		WillReturnRows(noteRows(3, 2, 1))

	cfg := noteListConfig()
	cfg.SearchMode = true
	_, env := doList(t, listApp(db, cfg), "/notes?search=homework&limit=2")

	// search mode ignores the limit and never pages
	assert.Len(t, env.Data.Results, 3)
	assert.Equal(t, 1, env.Data.Pagination.TotalPages)
	assert.Equal(t, int64(40), env.Data.Pagination.TotalItems)
	assert.Equal(t, 3, env.Data.Pagination.ItemsPerPage)
	assert.False(t, env.Data.Pagination.HasMore)
	assert.Nil(t, env.Data.Pagination.NextCursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCursorSeeksPastLastSeenID(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))
	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE note_id > .+ ORDER BY note_id asc`).
		WillReturnRows(noteRows(8, 9))

	_, env := doList(t, listApp(db, noteListConfig()),
		"/notes?limit=5&cursor=7&sortBy=id&sortOrder=asc")

	assert.Len(t, env.Data.Results, 2)
	assert.False(t, env.Data.Pagination.HasMore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCursorOnNonPKSortUsesTupleSeek(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))
	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE \(note_created_at, note_id\) < \(\(SELECT "note_created_at" FROM "notes"`).
		WillReturnRows(noteRows(4))

	_, env := doList(t, listApp(db, noteListConfig()), "/notes?limit=5&cursor=5")

	assert.Len(t, env.Data.Results, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type memoModel struct {
	MemoID        uint           `gorm:"primaryKey;column:memo_id" json:"id"`
	MemoCreatedAt time.Time      `gorm:"column:memo_created_at;autoCreateTime" json:"createdAt"`
	MemoDeletedAt gorm.DeletedAt `gorm:"column:memo_deleted_at" json:"-"`
}

func (memoModel) TableName() string { return "memos" }

func (m memoModel) PrimaryKey() uint    { return m.MemoID }
func (memoModel) PrimaryColumn() string { return "memo_id" }

func TestListCursorSeekSurvivesSoftDeletedCursorRow(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	app := fiber.New()
	app.Get("/memos", func(c *fiber.Ctx) error {
		return helper.List[memoModel](c, db, helper.ListConfig{
			SortColumns: map[string]string{
				"createdAt": "memo_created_at",
				"id":        "memo_id",
			},
			DefaultSortBy:    "createdAt",
			DefaultSortOrder: "desc",
		})
	})

	mock.ExpectQuery(`SELECT count\(\*\) FROM "memos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))
	// The seek subquery reads past the soft-delete scope: its WHERE clause
	// ends at the id match, so a cursor row deleted between pages still
	// yields a sort value and the iteration keeps going.
	mock.ExpectQuery(`SELECT "memo_created_at" FROM "memos" WHERE memo_id = \$1\), \$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"memo_id"}).AddRow(4))

	resp, err := app.Test(httptest.NewRequest("GET", "/memos?limit=5&cursor=5", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFilterAllowList(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	// only the allow-listed branchId filter reaches the query
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notes" WHERE note_branch_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE note_branch_id = `).
		WillReturnRows(noteRows(1))

	_, env := doList(t, listApp(db, noteListConfig()), "/notes?branchId=4&bogus=9")

	assert.Len(t, env.Data.Results, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPersistenceErrorIsGeneric500(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notes"`).
		WillReturnError(gorm.ErrInvalidDB)

	status, env := doList(t, listApp(db, noteListConfig()), "/notes")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Failed to fetch list data", env.Message)
}

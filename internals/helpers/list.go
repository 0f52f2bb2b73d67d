package helper

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	// Search mode trades completeness for bounded latency on free-text queries.
	SearchHardCap = 1000
)

// CursorModel is implemented by every listable model so the engine can
// read the numeric id it hands out as the next cursor.
type CursorModel interface {
	PrimaryKey() uint
	PrimaryColumn() string
}

// ListConfig describes how one entity collection is listed.
type ListConfig struct {
	// Columns matched with ILIKE when ?search= is present.
	SearchFields []string
	// Query key -> column, equality only. Anything not in here is ignored.
	FilterFields map[string]string
	// Relations preloaded onto the page rows.
	Preloads []string
	// sortBy key -> column whitelist, plus the defaults applied when the
	// client sends nothing (or something not on the list).
	SortColumns      map[string]string
	DefaultSortBy    string
	DefaultSortOrder string // asc|desc
	// SearchMode: when a search term is present, return up to SearchHardCap
	// matches in one page instead of paginating.
	SearchMode bool
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	NextCursor   *uint `json:"nextCursor"`
	HasMore      bool  `json:"hasMore"`
}

type ListResult[T any] struct {
	Results    []T        `json:"results"`
	Pagination Pagination `json:"pagination"`
}

// List runs the generic list/search flow over one model collection and
// writes the page straight into the response envelope.
//
// Normal mode fetches limit+1 rows with keyset pagination: the client sends
// back the last id it saw as ?cursor= and the page starts strictly after
// that row. Search mode (cfg.SearchMode plus a ?search= term) returns a
// single capped page with no cursor.
func List[T CursorModel](c *fiber.Ctx, db *gorm.DB, cfg ListConfig) error {
	var model T
	pkCol := model.PrimaryColumn()

	limit := atoiDefault(c.Query("limit"), DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}
	currentPage := atoiDefault(c.Query("page"), 1)
	if currentPage < 1 {
		currentPage = 1
	}
	search := strings.TrimSpace(c.Query("search"))
	isSearchMode := cfg.SearchMode && search != ""

	sortCol, sortDir := resolveSort(c, cfg)

	q := db.Model(&model)

	if search != "" && len(cfg.SearchFields) > 0 {
		or := db.Where(cfg.SearchFields[0]+" ILIKE ?", "%"+search+"%")
		for _, col := range cfg.SearchFields[1:] {
			or = or.Or(col+" ILIKE ?", "%"+search+"%")
		}
		q = q.Where(or)
	}

	for key, col := range cfg.FilterFields {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			q = q.Where(col+" = ?", v)
		}
	}

	var totalItems int64
	if err := q.Count(&totalItems).Error; err != nil {
		log.Printf("generic list error: %v query=%s", err, c.OriginalURL())
		return Error(c, fiber.StatusInternalServerError, "Failed to fetch list data")
	}

	totalPages := 1
	if !isSearchMode {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	for _, p := range cfg.Preloads {
		q = q.Preload(p)
	}

	// Secondary sort on the pk keeps the order total, which keyset
	// pagination needs to stay stable and duplicate-free.
	orderExpr := fmt.Sprintf("%s %s, %s %s", sortCol, sortDir, pkCol, sortDir)
	if sortCol == pkCol {
		orderExpr = fmt.Sprintf("%s %s", pkCol, sortDir)
	}

	var rows []T
	if isSearchMode {
		err := q.Order(orderExpr).Limit(SearchHardCap).Find(&rows).Error
		if err != nil {
			log.Printf("generic list error: %v query=%s", err, c.OriginalURL())
			return Error(c, fiber.StatusInternalServerError, "Failed to fetch list data")
		}
		return Success(c, "Data fetched successfully", ListResult[T]{
			Results: rows,
			Pagination: Pagination{
				CurrentPage:  currentPage,
				TotalPages:   1,
				TotalItems:   totalItems,
				ItemsPerPage: len(rows),
				NextCursor:   nil,
				HasMore:      false,
			},
		})
	}

	if cursor := atoiDefault(c.Query("cursor"), 0); cursor > 0 {
		cmp := ">"
		if sortDir == "desc" {
			cmp = "<"
		}
		if sortCol == pkCol {
			q = q.Where(fmt.Sprintf("%s %s ?", pkCol, cmp), cursor)
		} else {
			// Seek strictly past the cursor row's (sort value, id) tuple.
			// Unscoped: a cursor row soft-deleted between pages must still
			// anchor the seek, or the comparison against NULL ends the
			// iteration with rows left over.
			sub := db.Unscoped().Model(&model).Select(sortCol).Where(pkCol+" = ?", cursor)
			q = q.Where(
				fmt.Sprintf("(%s, %s) %s ((?), ?)", sortCol, pkCol, cmp),
				sub, cursor,
			)
		}
	}

	if err := q.Order(orderExpr).Limit(limit + 1).Find(&rows).Error; err != nil {
		log.Printf("generic list error: %v query=%s", err, c.OriginalURL())
		return Error(c, fiber.StatusInternalServerError, "Failed to fetch list data")
	}

	hasMore := len(rows) > limit
	var nextCursor *uint
	if hasMore {
		rows = rows[:limit]
		id := rows[len(rows)-1].PrimaryKey()
		nextCursor = &id
	}

	return Success(c, "Data fetched successfully", ListResult[T]{
		Results: rows,
		Pagination: Pagination{
			CurrentPage:  currentPage,
			TotalPages:   totalPages,
			TotalItems:   totalItems,
			ItemsPerPage: limit,
			NextCursor:   nextCursor,
			HasMore:      hasMore,
		},
	})
}

func resolveSort(c *fiber.Ctx, cfg ListConfig) (col, dir string) {
	key := strings.TrimSpace(c.Query("sortBy"))
	if key == "" {
		key = cfg.DefaultSortBy
	}
	col, ok := cfg.SortColumns[key]
	if !ok {
		col = cfg.SortColumns[cfg.DefaultSortBy]
	}

	dir = strings.ToLower(strings.TrimSpace(c.Query("sortOrder")))
	if dir != "asc" && dir != "desc" {
		dir = strings.ToLower(cfg.DefaultSortOrder)
		if dir != "asc" && dir != "desc" {
			dir = "desc"
		}
	}
	return col, dir
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

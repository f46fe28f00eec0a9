package api

import (
	"fmt"     // Error messages
	"strconv" // String conversion
	"strings" // Trimming
	"time"    // Date filters

	"bank_reporting/internal/domain" // Filters and enums

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Amount filters
)

type exportFormat int

const (
	formatJSON exportFormat = iota
	formatCSV
	formatXLSX
)

// queryError is a malformed query parameter
type queryError struct {
	param string
	value string
}

func (e *queryError) Error() string {
	return fmt.Sprintf("Invalid value %q for query parameter %s", e.value, e.param)
}

// query reads optional typed parameters, keeping the first failure
type query struct {
	c   *gin.Context
	err error
}

func (q *query) raw(name string) (string, bool) {
	v := strings.TrimSpace(q.c.Query(name))
	return v, v != "" && q.err == nil
}

func (q *query) fail(name, value string) {
	q.err = &queryError{param: name, value: value}
}

func (q *query) number(name string) int {
	v, ok := q.raw(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.fail(name, v)
	}
	return n
}

func (q *query) flag(name string) bool {
	v, ok := q.raw(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.fail(name, v)
	}
	return b
}

func (q *query) id(name string) *uint {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n == 0 {
		q.fail(name, v)
		return nil
	}
	id := uint(n)
	return &id
}

func (q *query) date(name string) *time.Time {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	t, err := domain.ParseTimestamp(v)
	if err != nil {
		q.fail(name, v)
		return nil
	}
	return &t
}

func (q *query) amount(name string) *decimal.Decimal {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		q.fail(name, v)
		return nil
	}
	return &d
}

func (q *query) direction(name string) *domain.Direction {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	d, err := domain.ParseDirection(v)
	if err != nil {
		q.fail(name, v)
		return nil
	}
	return &d
}

func (q *query) status(name string) *domain.Status {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	s, err := domain.ParseStatus(v)
	if err != nil {
		q.fail(name, v)
		return nil
	}
	return &s
}

func (q *query) page() domain.PageFilter {
	return domain.PageFilter{
		PageNumber: q.number("pageNumber"),
		PageSize:   q.number("pageSize"),
	}.Normalize()
}

// format picks JSON unless asCsv or asXlsx is set; CSV wins when both are
func (q *query) format() exportFormat {
	switch {
	case q.flag("asCsv"):
		return formatCSV
	case q.flag("asXlsx"):
		return formatXLSX
	}
	return formatJSON
}

func parsePartnerQuery(c *gin.Context) (domain.PageFilter, exportFormat, error) {
	q := &query{c: c}
	page := q.page()
	format := q.format()
	return page, format, q.err
}

func parseMerchantQuery(c *gin.Context) (domain.MerchantFilter, exportFormat, error) {
	q := &query{c: c}
	f := domain.MerchantFilter{
		PageFilter: q.page(),
		Country:    strings.TrimSpace(c.Query("country")),
		PartnerID:  q.id("partnerId"),
	}
	format := q.format()
	return f, format, q.err
}

func parseTransactionQuery(c *gin.Context) (domain.TransactionFilter, exportFormat, error) {
	q := &query{c: c}
	f := domain.TransactionFilter{
		PageFilter: q.page(),
		StartDate:  q.date("startDate"),
		EndDate:    q.date("endDate"),
		Direction:  q.direction("direction"),
		MinAmount:  q.amount("minAmount"),
		MaxAmount:  q.amount("maxAmount"),
		Status:     q.status("status"),
		MerchantID: q.id("merchantId"),
	}
	format := q.format()
	return f, format, q.err
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uint, error) {
	v := c.Param("id")
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n == 0 {
		return 0, &queryError{param: "id", value: v}
	}
	return uint(n), nil
}

// parentID reads a required parent id from the query string
func parentID(c *gin.Context, name string) (uint, error) {
	q := &query{c: c}
	id := q.id(name)
	if q.err != nil {
		return 0, q.err
	}
	if id == nil {
		return 0, fmt.Errorf("Query parameter %s is required", name)
	}
	return *id, nil
}

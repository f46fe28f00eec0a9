package domain

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"D": Debit, "c": Credit, "Debit": Debit, " credit ": Credit} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDirection("X")
	require.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{"0": Failed, "1": Successful, "failed": Failed, "Successful": Successful} {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseStatus("2")
	require.Error(t, err)
}

func TestEnumsDecodeFromXMLWireCodes(t *testing.T) {
	var doc struct {
		Direction Direction `xml:"Direction"`
		Status    Status    `xml:"Status"`
		Date      Timestamp `xml:"Date"`
	}
	err := xml.Unmarshal([]byte(`<Doc><Direction>C</Direction><Status>0</Status><Date>2024-01-01T12:00:00</Date></Doc>`), &doc)
	require.NoError(t, err)
	assert.Equal(t, Credit, doc.Direction)
	assert.Equal(t, Failed, doc.Status)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), doc.Date.Time)

	assert.Equal(t, "C", Credit.Code())
	assert.Equal(t, "1", Successful.Code())
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2024-03-05T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), got)

	got, err = ParseTimestamp("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseTimestamp("05/03/2024")
	require.Error(t, err)
}

func TestPageFilterNormalize(t *testing.T) {
	assert.Equal(t, PageFilter{PageNumber: 1, PageSize: 10}, PageFilter{}.Normalize())
	assert.Equal(t, PageFilter{PageNumber: 1, PageSize: 10}, PageFilter{PageNumber: -3, PageSize: -1}.Normalize())
	assert.Equal(t, PageFilter{PageNumber: 4, PageSize: MaxPageSize}, PageFilter{PageNumber: 4, PageSize: 5000}.Normalize())
	assert.Equal(t, 20, PageFilter{PageNumber: 3, PageSize: 10}.Offset())
}

func TestPageFilterHugePageNumberStaysPastTheEnd(t *testing.T) {
	for _, size := range []int{1, 2, DefaultPageSize, MaxPageSize, 5000} {
		p := PageFilter{PageNumber: math.MaxInt, PageSize: size}.Normalize()
		assert.Equal(t, MaxPageNumber, p.PageNumber)
		offset := p.Offset()
		assert.Positive(t, offset, "page size %d", size)
		assert.Equal(t, MaxPageNumber-1, offset/p.PageSize, "page size %d", size)
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("constraint")
	err := fmt.Errorf("wrapped: %w", Duplicate(cause, "Partner with name '%s' already exists", "Acme"))

	assert.True(t, IsDuplicate(err))
	assert.False(t, IsNotFound(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Acme")

	assert.True(t, IsNotFound(NotFound("Merchant with id %d was not found", 7)))
	assert.True(t, IsValidation(Invalid("empty batch")))
	assert.Equal(t, Kind(0), KindOf(errors.New("boom")))
}

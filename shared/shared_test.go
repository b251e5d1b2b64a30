package shared_test

import (
	"testing"
	"workbrew/shared"
	"workbrew/shared/constant"
	"workbrew/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "remainder rounds up",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single page",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "two segments",
			parts:    []string{"booking:session", "abc"},
			expected: "booking:session:abc",
		},
		{
			name:     "single segment",
			parts:    []string{"reservation:get"},
			expected: "reservation:get",
		},
		{
			name:     "three segments",
			parts:    []string{"a", "b", "c"},
			expected: "a:b:c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.parts...)

			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("some-id", "id", "reservations")

	first := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)

	if first != second {
		t.Errorf("expected stable key, got %s and %s", first, second)
	}

	otherPage := shared.BuildCacheKeyWithQuery("reservation:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == otherPage {
		t.Errorf("expected different keys for different params, got %s twice", first)
	}

	otherFilter := shared.BuildCacheKeyWithQuery("reservation:gets", params, shared.FilterByID("other-id", "id", "reservations"))
	if first == otherFilter {
		t.Errorf("expected different keys for different filters, got %s twice", first)
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("some-id", "id", "reservations")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "id" || filter.Table != "reservations" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}

	if filter.Value != "some-id" {
		t.Errorf("expected value 'some-id', got %v", filter.Value)
	}
}

func TestTransformFields(t *testing.T) {
	type reservationPatch struct {
		Status   string `db:"status"`
		Guests   int    `db:"guests"`
		Internal string
	}

	result := shared.TransformFields(reservationPatch{Status: "cancelled"}, "system")

	if result["status"] != "cancelled" {
		t.Errorf("expected status to be 'cancelled', got %v", result["status"])
	}

	if _, ok := result["guests"]; ok {
		t.Error("zero field should be skipped")
	}

	if result[constant.FieldModifiedBy] != "system" {
		t.Errorf("expected modified_by to be 'system', got %v", result[constant.FieldModifiedBy])
	}

	if _, ok := result[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

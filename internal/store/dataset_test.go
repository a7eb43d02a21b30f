package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
)

func TestDatasetUpsertRoundTrip(t *testing.T) {
	datasets, _, _, _ := newTestStores(t)

	require.NoError(t, datasets.Upsert(sampleDataset("Sales Q1")))

	got, err := datasets.GetByName("Sales Q1")
	require.NoError(t, err)

	assert.Equal(t, "Sales Q1", got.Name)
	assert.Equal(t, 2, got.RowCount)
	assert.Equal(t, 2, got.ColumnCount)
	assert.Equal(t, entity.StringList{"region", "amount"}, got.Headers)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "north", got.Rows[0]["region"])
	assert.Equal(t, float64(100), got.Rows[0]["amount"])
	assert.Nil(t, got.Rows[1]["amount"])
	assert.False(t, got.CreatedAt.IsZero())
}

func TestDatasetUpsertReplacesByName(t *testing.T) {
	datasets, _, _, _ := newTestStores(t)

	require.NoError(t, datasets.Upsert(sampleDataset("Sales Q1")))
	first, err := datasets.GetByName("Sales Q1")
	require.NoError(t, err)

	updated := sampleDataset("Sales Q1")
	updated.Rows = entity.JSONRows{{"region": "east", "amount": float64(7)}}
	require.NoError(t, datasets.Upsert(updated))

	second, err := datasets.GetByName("Sales Q1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must keep the record identity")
	assert.Equal(t, 1, second.RowCount)

	list, err := datasets.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDatasetNameValidation(t *testing.T) {
	datasets, _, _, _ := newTestStores(t)

	cases := []struct {
		name    string
		dataset string
	}{
		{"empty", ""},
		{"bad charset", "sales;drop table"},
		{"too long", strings.Repeat("a", 101)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := datasets.Upsert(sampleDataset(tc.dataset))
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestDatasetListOmitsRows(t *testing.T) {
	datasets, _, _, _ := newTestStores(t)
	require.NoError(t, datasets.Upsert(sampleDataset("Sales Q1")))

	list, err := datasets.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Empty(t, list[0].Rows)
	assert.Equal(t, 2, list[0].RowCount)
}

func TestDatasetGetMissing(t *testing.T) {
	datasets, _, _, _ := newTestStores(t)

	_, err := datasets.GetByName("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDatasetDeleteCascadesDashboards(t *testing.T) {
	datasets, dashboards, _, _ := newTestStores(t)

	require.NoError(t, datasets.Upsert(sampleDataset("Sales Q1")))
	require.NoError(t, dashboards.Upsert(&entity.Dashboard{
		Name:        "Q1 View",
		DatasetName: "Sales Q1",
		JSONFormat:  `{"charts":[]}`,
	}))

	require.NoError(t, datasets.DeleteByName("Sales Q1"))

	_, err := datasets.GetByName("Sales Q1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = dashboards.GetByName("Q1 View")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDatasetDeleteMissing(t *testing.T) {
	datasets, _, _, _ := newTestStores(t)

	assert.ErrorIs(t, datasets.DeleteByName("nope"), ErrNotFound)
}

package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktrack/internal/models"
	"stocktrack/internal/query"
)

func TestCreateDerivesStatusAndLogs(t *testing.T) {
	svc, db := newTestService(t)

	item, err := svc.Create(CreateInput{
		Name:        "HDMI Cable",
		Category:    "Cables",
		Description: "6-foot cable",
		Quantity:    0,
	}, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, models.StatusOutOfStock, item.Status)

	fetched, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOutOfStock, fetched.Status)

	entry := lastActivity(t, db)
	assert.Equal(t, models.ActivityItemAdded, entry.Type)
	assert.Equal(t, "alice", entry.User)
	assert.Equal(t, "HDMI Cable", entry.ItemName)
	assert.Contains(t, entry.Description, "HDMI Cable")
	assert.Contains(t, entry.Description, "Quantity: 0")
}

func TestCreateValidation(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Create(CreateInput{Quantity: -3}, "alice")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "description")
	assert.Contains(t, verr.Fields, "quantity")

	// Nothing persisted, nothing logged.
	var count int64
	require.NoError(t, db.Model(&models.InventoryItem{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Zero(t, activityCount(t, db))
}

func TestUpdateRecomputesStatusAndDescribesChanges(t *testing.T) {
	svc, db := newTestService(t)

	item, err := svc.Create(CreateInput{
		Name:        "Monitor",
		Category:    "Electronics",
		Description: "27-inch monitor",
		Quantity:    10,
	}, "alice")
	require.NoError(t, err)
	require.Equal(t, models.StatusInStock, item.Status)

	q := 3
	updated, err := svc.Update(item.ID, UpdateInput{Quantity: &q}, "bob")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, models.StatusLowStock, updated.Status)

	entry := lastActivity(t, db)
	assert.Equal(t, models.ActivityItemUpdated, entry.Type)
	assert.Equal(t, "bob", entry.User)
	assert.Contains(t, entry.Description, "quantity from 10 to 3")
	assert.Contains(t, entry.Description, `status from "In Stock" to "Low Stock"`)
}

func TestUpdateWithoutTrackedChangesUsesFallbackDescription(t *testing.T) {
	svc, db := newTestService(t)

	item, err := svc.Create(CreateInput{
		Name:        "Monitor",
		Category:    "Electronics",
		Description: "27-inch monitor",
		Quantity:    10,
	}, "alice")
	require.NoError(t, err)

	supplier := "Acme"
	_, err = svc.Update(item.ID, UpdateInput{Supplier: &supplier}, "alice")
	require.NoError(t, err)

	entry := lastActivity(t, db)
	assert.Equal(t, "Updated item: Monitor", entry.Description)
}

func TestUpdateKeepsQuantityWhenAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.Create(CreateInput{
		Name:        "Monitor",
		Category:    "Electronics",
		Description: "27-inch monitor",
		Quantity:    10,
	}, "alice")
	require.NoError(t, err)

	name := "Monitor v2"
	updated, err := svc.Update(item.ID, UpdateInput{Name: &name}, "alice")
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Quantity)
	assert.Equal(t, models.StatusInStock, updated.Status)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	q := 1
	_, err := svc.Update("3f1a9f37-0000-0000-0000-000000000000", UpdateInput{Quantity: &q}, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCapturesFieldsForAudit(t *testing.T) {
	svc, db := newTestService(t)

	item, err := svc.Create(CreateInput{
		Name:        "SSD Drive",
		Category:    "Storage",
		Description: "1TB SSD",
		Quantity:    7,
	}, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID, "alice"))

	_, err = svc.Get(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	entry := lastActivity(t, db)
	assert.Equal(t, models.ActivityItemDeleted, entry.Type)
	assert.Contains(t, entry.Description, "SSD Drive")
	assert.Contains(t, entry.Description, "Quantity: 7")
	assert.Contains(t, entry.Description, "Category: Storage")

	assert.ErrorIs(t, svc.Delete(item.ID, "alice"), ErrNotFound)
}

func TestArchiveRestoreLifecycle(t *testing.T) {
	svc, _ := newTestService(t)

	item, err := svc.Create(CreateInput{
		Name:        "Keyboard",
		Category:    "Peripherals",
		Description: "Mechanical keyboard",
		Quantity:    5,
	}, "alice")
	require.NoError(t, err)

	archived, err := svc.Archive(item.ID, "alice")
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
	require.NotNil(t, archived.ArchivedAt)
	require.NotNil(t, archived.ArchivedBy)
	assert.Equal(t, "alice", *archived.ArchivedBy)

	active, _, err := svc.List(query.ListParams{Page: 1, Limit: 10, Sort: "name", Order: "asc"})
	require.NoError(t, err)
	assert.Empty(t, active)

	stored, _, err := svc.ListArchived(query.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, item.ID, stored[0].ID)

	restored, err := svc.Restore(item.ID, "alice")
	require.NoError(t, err)
	assert.False(t, restored.IsArchived)
	assert.Nil(t, restored.ArchivedAt)
	assert.Nil(t, restored.ArchivedBy)

	active, _, err = svc.List(query.ListParams{Page: 1, Limit: 10, Sort: "name", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, active, 1)

	stored, _, err = svc.ListArchived(query.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestEveryMutationWritesOneAuditEntry(t *testing.T) {
	svc, db := newTestService(t)

	item, err := svc.Create(CreateInput{
		Name: "Widget", Category: "Tools", Description: "a widget", Quantity: 2,
	}, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, activityCount(t, db))

	q := 4
	_, err = svc.Update(item.ID, UpdateInput{Quantity: &q}, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 2, activityCount(t, db))

	_, err = svc.Archive(item.ID, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 3, activityCount(t, db))

	_, err = svc.Restore(item.ID, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 4, activityCount(t, db))

	require.NoError(t, svc.Delete(item.ID, "alice"))
	assert.EqualValues(t, 5, activityCount(t, db))

	var types []string
	require.NoError(t, db.Model(&models.ActivityLog{}).Order("timestamp asc").Pluck("type", &types).Error)
	assert.Equal(t, []string{
		models.ActivityItemAdded,
		models.ActivityItemUpdated,
		models.ActivityItemArchived,
		models.ActivityItemRestored,
		models.ActivityItemDeleted,
	}, types)
}

func TestAuditFailureDoesNotFailMutation(t *testing.T) {
	svc, db := newTestService(t)
	require.NoError(t, db.Migrator().DropTable(&models.ActivityLog{}))

	item, err := svc.Create(CreateInput{
		Name: "Widget", Category: "Tools", Description: "a widget", Quantity: 2,
	}, "alice")
	require.NoError(t, err)

	fetched, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", fetched.Name)
}

func TestListSearchMatchesNameCategoryDescription(t *testing.T) {
	svc, _ := newTestService(t)

	seed := []CreateInput{
		{Name: "HDMI Cable", Category: "Cables", Description: "video cable", Quantity: 1},
		{Name: "Monitor", Category: "Electronics", Description: "hdmi input panel", Quantity: 2},
		{Name: "Mouse", Category: "Peripherals", Description: "wireless", Quantity: 3},
	}
	for _, in := range seed {
		_, err := svc.Create(in, "alice")
		require.NoError(t, err)
	}

	items, pagination, err := svc.List(query.ListParams{Search: "HDMI", Sort: "name", Order: "asc", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, pagination.Total)
	require.Len(t, items, 2)
	assert.Equal(t, "HDMI Cable", items[0].Name)
	assert.Equal(t, "Monitor", items[1].Name)
}

func TestListPagination(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 25; i++ {
		_, err := svc.Create(CreateInput{
			Name:        itemName(i),
			Category:    "Bulk",
			Description: "bulk item",
			Quantity:    10,
		}, "alice")
		require.NoError(t, err)
	}

	items, pagination, err := svc.List(query.ListParams{Sort: "name", Order: "asc", Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.EqualValues(t, 25, pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
	assert.Equal(t, itemName(10), items[0].Name)
	assert.Equal(t, itemName(19), items[9].Name)

	items, pagination, err = svc.List(query.ListParams{Sort: "name", Order: "asc", Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

// itemName yields names whose lexicographic order matches their index.
func itemName(i int) string {
	return string(rune('a'+i/10)) + string(rune('a'+i%10)) + " item"
}

func TestStatsExcludeArchived(t *testing.T) {
	svc, _ := newTestService(t)

	seed := []CreateInput{
		{Name: "A", Category: "Electronics", Description: "d", Quantity: 10},
		{Name: "B", Category: "Electronics", Description: "d", Quantity: 3},
		{Name: "C", Category: "Cables", Description: "d", Quantity: 0},
		{Name: "D", Category: "Cables", Description: "d", Quantity: 8},
	}
	var ids []string
	for _, in := range seed {
		item, err := svc.Create(in, "alice")
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}
	_, err := svc.Archive(ids[3], "alice")
	require.NoError(t, err)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Overview.TotalItems)
	assert.EqualValues(t, 13, stats.Overview.TotalQuantity)
	assert.EqualValues(t, 1, stats.StatusBreakdown.InStock)
	assert.EqualValues(t, 1, stats.StatusBreakdown.LowStock)
	assert.EqualValues(t, 1, stats.StatusBreakdown.OutOfStock)

	counts := map[string]int64{}
	for _, c := range stats.CategoryBreakdown {
		counts[c.Category] = c.Count
	}
	assert.EqualValues(t, 2, counts["Electronics"])
	assert.EqualValues(t, 1, counts["Cables"])
}

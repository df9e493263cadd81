package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bootstrap/models"
)

const itemsTable = "items"

var itemColumns = []string{"id", "name", "description", "created_at"}

func buildListItemsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(itemColumns...).
		From(itemsTable).
		OrderBy("created_at", "id").
		ToSql()
}

func buildGetItemQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildInsertItemsQuery inserts every item in one statement. With
// skipExisting, rows whose id is already stored are ignored instead of
// failing the statement.
func buildInsertItemsQuery(b sq.StatementBuilderType, skipExisting bool, items ...models.Item) (string, []any, error) {
	query := b.Insert(itemsTable).Columns(itemColumns...)
	for _, item := range items {
		query = query.Values(item.ID, item.Name, item.Description, item.CreatedAt)
	}
	if skipExisting {
		query = query.Suffix("ON CONFLICT (id) DO NOTHING")
	}

	return query.ToSql()
}

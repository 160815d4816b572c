package postgres

import (
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/postgres/profilerepo"

	"gorm.io/gorm"
)

// ordersChangedTrigger publishes every committed mutation of the orders
// table on the orders_changed channel. The payload is the operation
// name; subscribers re-read their view instead of decoding row data, so
// the notification only has to say that something changed.
const ordersChangedTrigger = `
CREATE OR REPLACE FUNCTION notify_orders_changed() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify('orders_changed', TG_OP);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS orders_changed ON orders;
CREATE TRIGGER orders_changed
	AFTER INSERT OR UPDATE OR DELETE ON orders
	FOR EACH STATEMENT EXECUTE FUNCTION notify_orders_changed();
`

// Migrate creates or updates the schema and installs the change
// notification trigger. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &profilerepo.ProfileDTO{}); err != nil {
		return err
	}

	return db.Exec(ordersChangedTrigger).Error
}

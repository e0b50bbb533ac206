package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

const (
	orderKeyPrefix = "order:"
	itemKeyPrefix  = "order_item:"
)

func orderKey(id int64) string {
	return fmt.Sprintf("%s%d", orderKeyPrefix, id)
}

func itemKey(id int64) string {
	return fmt.Sprintf("%s%d", itemKeyPrefix, id)
}

// Repository implements ports.OrderRepository on a key-value store.
type Repository struct {
	store ports.KVStore
}

// NewRepository creates a key-value backed order repository.
func NewRepository(store ports.KVStore) *Repository {
	return &Repository{store: store}
}

// Add persists the order record and then each item record in turn.
func (r *Repository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.writeOrder(ctx, fromDomain(aggregate)); err != nil {
		return err
	}

	for _, item := range aggregate.Items() {
		if err := r.writeItem(ctx, itemFromDomain(item)); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves an order with its items hydrated, sorted by item id.
func (r *Repository) Get(ctx context.Context, id int64) (*order.Order, error) {
	dto, err := r.readOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := r.itemsOfOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// GetAll retrieves every order without items, newest first.
func (r *Repository) GetAll(ctx context.Context) ([]*order.Order, error) {
	records, err := r.store.ScanByPrefix(ctx, orderKeyPrefix)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		var dto OrderDTO
		if err := json.Unmarshal(record.Value, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal order record %q: %w", record.Key, err)
		}

		o, err := toDomain(dto, nil)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders, nil
}

// Update persists the order record using the aggregate's version as the
// concurrency token. The stored record's version must equal the aggregate's;
// the write bumps it by one. Item records are not touched.
func (r *Repository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := r.readOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if stored.Version != aggregate.Version() {
		return errs.NewVersionConflictError("order", aggregate.ID(), aggregate.Version(), stored.Version)
	}

	dto := fromDomain(aggregate)
	dto.Version = stored.Version + 1
	return r.writeOrder(ctx, dto)
}

// GetItem retrieves a single order item by id.
func (r *Repository) GetItem(ctx context.Context, id int64) (*order.OrderItem, error) {
	dto, err := r.readItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return itemToDomain(dto)
}

// UpdateItem persists one item record under the same versioning rules as
// Update.
func (r *Repository) UpdateItem(ctx context.Context, item *order.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	stored, err := r.readItem(ctx, item.ID())
	if err != nil {
		return err
	}
	if stored.Version != item.Version() {
		return errs.NewVersionConflictError("orderItem", item.ID(), item.Version(), stored.Version)
	}

	dto := itemFromDomain(item)
	dto.Version = stored.Version + 1
	return r.writeItem(ctx, dto)
}

// Delete removes the order's items first and the order record last, so an
// interrupted delete leaves an item-less shell that a re-run cleans up.
// Deleting an absent order is not an error.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	records, err := r.store.ScanByPrefix(ctx, itemKeyPrefix)
	if err != nil {
		return err
	}

	for _, record := range records {
		var dto OrderItemDTO
		if err := json.Unmarshal(record.Value, &dto); err != nil {
			return fmt.Errorf("unmarshal item record %q: %w", record.Key, err)
		}
		if dto.OrderID != id {
			continue
		}
		if err := r.store.Delete(ctx, record.Key); err != nil {
			return err
		}
	}

	return r.store.Delete(ctx, orderKey(id))
}

// itemsOfOrder scans the item namespace and keeps the records belonging to
// orderID, sorted by item id. The join is in-memory; the substrate has no
// secondary indexes.
func (r *Repository) itemsOfOrder(ctx context.Context, orderID int64) ([]*order.OrderItem, error) {
	records, err := r.store.ScanByPrefix(ctx, itemKeyPrefix)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(records))
	for _, record := range records {
		var dto OrderItemDTO
		if err := json.Unmarshal(record.Value, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal item record %q: %w", record.Key, err)
		}
		if dto.OrderID != orderID {
			continue
		}

		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID() < items[j].ID() })
	return items, nil
}

func (r *Repository) readOrder(ctx context.Context, id int64) (OrderDTO, error) {
	value, err := r.store.Get(ctx, orderKey(id))
	if err != nil {
		if isNotFound(err) {
			return OrderDTO{}, errs.NewObjectNotFoundError("order", id)
		}
		return OrderDTO{}, err
	}

	var dto OrderDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return OrderDTO{}, fmt.Errorf("unmarshal order record %q: %w", orderKey(id), err)
	}
	return dto, nil
}

func (r *Repository) writeOrder(ctx context.Context, dto OrderDTO) error {
	value, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("marshal order record %d: %w", dto.ID, err)
	}
	return r.store.Set(ctx, orderKey(dto.ID), value)
}

func (r *Repository) readItem(ctx context.Context, id int64) (OrderItemDTO, error) {
	value, err := r.store.Get(ctx, itemKey(id))
	if err != nil {
		if isNotFound(err) {
			return OrderItemDTO{}, errs.NewObjectNotFoundError("orderItem", id)
		}
		return OrderItemDTO{}, err
	}

	var dto OrderItemDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return OrderItemDTO{}, fmt.Errorf("unmarshal item record %q: %w", itemKey(id), err)
	}
	return dto, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}

func (r *Repository) writeItem(ctx context.Context, dto OrderItemDTO) error {
	value, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("marshal item record %d: %w", dto.ID, err)
	}
	return r.store.Set(ctx, itemKey(dto.ID), value)
}

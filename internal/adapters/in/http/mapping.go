package http

import (
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func fromSubmission(body servers.OrderSubmission) (commands.HeaderInput, []commands.LineInput) {
	header := commands.HeaderInput{
		SupplierID:       deref(body.Header.SupplierId),
		Description:      deref(body.Header.Description),
		ExpectedDelivery: deref(body.Header.ExpectedDelivery),
		Status:           deref(body.Header.Status),
	}
	if body.Items == nil {
		return header, nil
	}

	lines := make([]commands.LineInput, len(*body.Items))
	for i, item := range *body.Items {
		lines[i] = commands.LineInput{
			ID:        deref(item.Id),
			ItemID:    deref(item.ItemId),
			FleetID:   deref(item.FleetId),
			Status:    deref(item.Status),
			Quantity:  deref(item.Quantity),
			UnitPrice: deref(item.UnitPrice),
			Delete:    deref(item.Delete),
		}
	}
	return header, lines
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

func toOrderSummary(o queries.OrderSummary) servers.OrderSummary {
	return servers.OrderSummary{
		Id:               o.ID.Bytes(),
		SupplierId:       o.SupplierID.Bytes(),
		SupplierName:     o.SupplierName,
		Description:      o.Description,
		CreatedAt:        o.CreatedAt,
		ExpectedDelivery: toDate(o.ExpectedDelivery),
		Status:           o.Status.Code(),
		StatusLabel:      o.Status.Label(),
		Total:            o.Total.String(),
		ItemCount:        o.ItemCount,
	}
}

func toOrderSummaries(orders []queries.OrderSummary) []servers.OrderSummary {
	out := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		out[i] = toOrderSummary(o)
	}
	return out
}

func toOrderDetail(d *queries.GetOrderQueryResponse) servers.OrderDetail {
	items := make([]servers.OrderLine, len(d.Items))
	for i, line := range d.Items {
		items[i] = servers.OrderLine{
			Id:          line.ID.Bytes(),
			ItemId:      line.ItemID.Bytes(),
			ItemName:    line.ItemName,
			FleetPrefix: line.FleetPrefix,
			Status:      line.Status.Code(),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.String(),
			Subtotal:    line.Subtotal.String(),
		}
		if line.FleetID != nil {
			fleet := line.FleetID.Bytes()
			items[i].FleetId = &fleet
		}
	}

	movements := make([]servers.OrderMovement, len(d.Movements))
	for i, m := range d.Movements {
		movements[i] = servers.OrderMovement{
			Id:         m.ID.Bytes(),
			Kind:       m.Kind.Code(),
			NextStatus: m.Next.Code(),
			Note:       m.Note,
			Actor:      m.Actor.Bytes(),
			ActorName:  m.ActorName,
			At:         m.At,
		}
		if m.Previous != nil {
			prev := m.Previous.Code()
			movements[i].PreviousStatus = &prev
		}
	}

	return servers.OrderDetail{
		Id:               d.ID.Bytes(),
		Owner:            d.Owner.Bytes(),
		SupplierId:       d.SupplierID.Bytes(),
		SupplierName:     d.SupplierName,
		Description:      d.Description,
		CreatedAt:        d.CreatedAt,
		ExpectedDelivery: toDate(d.ExpectedDelivery),
		Status:           d.Status.Code(),
		StatusLabel:      d.Status.Label(),
		Total:            d.Total.String(),
		Version:          d.Version,
		Items:            items,
		Movements:        movements,
	}
}

func toDashboard(d *queries.GetDashboardQueryResponse) servers.Dashboard {
	spent := make([]servers.NamedAmount, len(d.TopSuppliersBySpent))
	for i, s := range d.TopSuppliersBySpent {
		spent[i] = servers.NamedAmount{Id: s.ID.Bytes(), Name: s.Name, Amount: s.Spent.String()}
	}
	topItems := make([]servers.NamedCount, len(d.TopItems))
	for i, it := range d.TopItems {
		topItems[i] = servers.NamedCount{Id: it.ID.Bytes(), Name: it.Name, Count: it.Count}
	}

	return servers.Dashboard{
		Orders:               d.Orders,
		Suppliers:            d.Suppliers,
		Fleets:               d.Fleets,
		Items:                d.Items,
		ItemCategories:       d.ItemCategories,
		Pending:              d.Pending,
		InProgress:           d.InProgress,
		Finalized:            d.Finalized,
		TotalValue:           d.TotalValue.String(),
		TotalQuantity:        d.TotalQuantity,
		OrdersThisMonth:      d.OrdersThisMonth,
		LatestOrders:         toOrderSummaries(d.LatestOrders),
		UrgentOrders:         toOrderSummaries(d.UrgentOrders),
		TopSuppliersByOrders: toNamedCounts(d.TopSuppliersByOrders),
		TopSuppliersBySpent:  spent,
		SuppliersWithOverdue: toNamedCounts(d.SuppliersWithOverdue),
		TopItems:             topItems,
	}
}

func toNamedCounts(counts []queries.SupplierCount) []servers.NamedCount {
	out := make([]servers.NamedCount, len(counts))
	for i, c := range counts {
		out[i] = servers.NamedCount{Id: c.ID.Bytes(), Name: c.Name, Count: c.Count}
	}
	return out
}

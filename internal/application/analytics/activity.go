package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/tiendas-api/internal/application/dto"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
	"github.com/jhoicas/tiendas-api/internal/domain/sales"
)

const (
	activityFeedCap = 50
	// Se trae más que el tope por fuente para que el filtro de búsqueda no
	// deje el feed corto.
	activityFetchLimit = 200
)

// ActivityFeedUseCase arma el feed cronológico mezclando líneas de venta y
// creaciones de producto.
type ActivityFeedUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewActivityFeedUseCase construye el caso de uso.
func NewActivityFeedUseCase(analyticsRepo repository.AnalyticsRepository) *ActivityFeedUseCase {
	return &ActivityFeedUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock fija el reloj (para tests de etiquetas relativas).
func (uc *ActivityFeedUseCase) WithClock(now func() time.Time) *ActivityFeedUseCase {
	uc.now = now
	return uc
}

// GetActivities devuelve el feed: filtrado opcional por subcadena (nombre de
// producto o tienda, sin distinguir mayúsculas), ordenado por fecha
// descendente y truncado a 50. Los empates de fecha conservan el orden de
// llegada de cada fuente.
func (uc *ActivityFeedUseCase) GetActivities(ctx context.Context, storeID, search string) ([]dto.ActivityDTO, error) {
	saleLines, err := uc.analyticsRepo.ListSaleLineActivity(ctx, storeID, activityFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("feed: líneas de venta: %w", err)
	}
	creations, err := uc.analyticsRepo.ListRecentProducts(ctx, storeID, activityFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("feed: productos recientes: %w", err)
	}

	now := uc.now()
	type event struct {
		ts  time.Time
		dto dto.ActivityDTO
	}
	events := make([]event, 0, len(saleLines)+len(creations))

	for _, row := range saleLines {
		allocated := sales.AllocateLine(row.SaleDiscount, row.SaleSubtotal, sales.Line{
			Quantity:      row.Quantity,
			UnitPrice:     row.UnitPrice,
			ProviderPrice: row.ProviderPrice,
		})
		events = append(events, event{ts: row.SaleDate, dto: dto.ActivityDTO{
			Kind:          dto.ActivityKindSale,
			ProductName:   row.ProductName,
			StoreName:     row.StoreName,
			Quantity:      row.Quantity,
			NetTotal:      allocated.Net.Round(2),
			NetProfit:     allocated.NetProfit.Round(2),
			Seller:        row.SellerName,
			PaymentMethod: row.PaymentMethod,
			OrderType:     orderType(row.Status),
			CouponCode:    row.CouponCode,
			Timestamp:     row.SaleDate.Format(time.RFC3339),
			RelativeTime:  relativeLabel(now, row.SaleDate),
		}})
	}
	for _, row := range creations {
		events = append(events, event{ts: row.CreatedAt, dto: dto.ActivityDTO{
			Kind:         dto.ActivityKindProduct,
			ProductName:  row.Name,
			StoreName:    row.StoreName,
			Quantity:     row.Stock, // señal aproximada de cantidad inicial
			Timestamp:    row.CreatedAt.Format(time.RFC3339),
			RelativeTime: relativeLabel(now, row.CreatedAt),
		}})
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := events[:0]
		for _, e := range events {
			if strings.Contains(strings.ToLower(e.dto.ProductName), needle) ||
				strings.Contains(strings.ToLower(e.dto.StoreName), needle) {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	// Orden estable: los empates de timestamp conservan el orden de fuente
	sort.SliceStable(events, func(i, j int) bool { return events[i].ts.After(events[j].ts) })

	if len(events) > activityFeedCap {
		events = events[:activityFeedCap]
	}
	out := make([]dto.ActivityDTO, len(events))
	for i, e := range events {
		out[i] = e.dto
	}
	return out, nil
}

// orderType etiqueta legible del tipo de orden según el estatus de la venta.
func orderType(status string) string {
	switch status {
	case entity.SaleStatusReturned:
		return "Devolución"
	case entity.SaleStatusDonated:
		return "Donación"
	case entity.SaleStatusCanceled:
		return "Anulada"
	default:
		return "Venta"
	}
}

// relativeLabel etiqueta relativa: minutos si hace menos de una hora, horas
// si hace menos de un día, si no la fecha calendario.
func relativeLabel(now, ts time.Time) string {
	diff := now.Sub(ts)
	switch {
	case diff < time.Minute:
		return "hace un momento"
	case diff < time.Hour:
		m := int(diff.Minutes())
		if m == 1 {
			return "hace 1 minuto"
		}
		return fmt.Sprintf("hace %d minutos", m)
	case diff < 24*time.Hour:
		h := int(diff.Hours())
		if h == 1 {
			return "hace 1 hora"
		}
		return fmt.Sprintf("hace %d horas", h)
	default:
		return ts.Format("02/01/2006")
	}
}

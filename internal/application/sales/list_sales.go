package sales

import (
	"time"

	"github.com/jhoicas/tiendas-api/internal/application/dto"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
	"github.com/jhoicas/tiendas-api/internal/domain/sales"
)

// ListSalesUseCase consultas de ventas con el reparto de descuento aplicado
// por línea (derivado, nunca persistido).
type ListSalesUseCase struct {
	saleRepo repository.SaleRepository
}

// NewListSalesUseCase construye el caso de uso.
func NewListSalesUseCase(saleRepo repository.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// ListByStore lista ventas de una tienda, más recientes primero.
func (uc *ListSalesUseCase) ListByStore(storeID string, from, to *time.Time, limit, offset int) ([]dto.SaleResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.saleRepo.ListByStore(storeID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, MapSale(s))
	}
	return out, nil
}

// GetByID devuelve una venta con sus líneas y el reparto de descuento
// aplicado.
func (uc *ListSalesUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := MapSale(s)
	return &resp, nil
}

// MapSale convierte la entidad en DTO recalculando el reparto proporcional
// del descuento entre las líneas.
func MapSale(s *entity.Sale) dto.SaleResponse {
	lines := make([]sales.Line, len(s.Items))
	for i, item := range s.Items {
		lines[i] = sales.Line{Quantity: item.Quantity, UnitPrice: item.Price}
	}
	allocated := sales.AllocateDiscount(s.Discount, lines)

	items := make([]dto.SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = dto.SaleItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Gross:     allocated[i].Gross,
			Discount:  allocated[i].Discount,
			Net:       allocated[i].Net,
		}
	}
	return dto.SaleResponse{
		ID:            s.ID,
		StoreID:       s.StoreID,
		Date:          s.Date.Format(time.RFC3339),
		Total:         s.Total,
		Discount:      s.Discount,
		CouponCode:    s.CouponCode,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		CustomerName:  s.CustomerName,
		Items:         items,
	}
}

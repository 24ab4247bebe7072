package ozon

import (
	"context"
	"fmt"
	"strings"

	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

const (
	returnsPageLimit = 1000
	// DeletedGoodsName substitui o nome de SKUs que o catálogo não devolve mais
	DeletedGoodsName = "Имя отсутствует, товар удален"
)

var returnsHeader = []string{
	"Возврат на FBO или FBS",
	"Артикул продавца",
	"OZON SKU ID",
	"Наименование товара",
	"Номер отправления",
	"Статус возврата",
	"Дата оформления заказа",
	"Дата возврата",
	"Причина возврата",
}

func (s *OzonIntegrator) Returns(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	table := domain.NewTable(SheetReturns, returnsHeader)

	for _, scope := range []session.Scope{session.ScopeFBO, session.ScopeFBS} {
		returns, err := s.fetchReturns(ctx, sess.Window(), scope)
		if err != nil {
			return nil, err
		}
		if len(returns) == 0 {
			continue
		}

		skus := make([]int64, 0, len(returns))
		for _, item := range returns {
			skus = append(skus, item.SKU)
		}

		goods, err := s.goods(ctx, sess, skus)
		if err != nil {
			return nil, err
		}

		for _, item := range returns {
			name := DeletedGoodsName
			if info := goods[item.SKU]; info.Resolved && info.Name != "" {
				name = info.Name
			}

			returnedAt := domain.Dash
			if item.ReturnedToOzonMoment != "" {
				returnedAt = formatMoment(item.ReturnedToOzonMoment)
			}

			table.Append(domain.Row{
				string(scope),
				item.CompanyID,
				item.SKU,
				name,
				item.PostingNumber,
				item.StatusName,
				formatMoment(item.AcceptedFromCustomerMoment),
				returnedAt,
				item.ReturnReasonName,
			})
		}
	}

	return table, nil
}

func (s *OzonIntegrator) fetchReturns(ctx context.Context, window domain.DateWindow, scope session.Scope) ([]ozondomain.Return, error) {
	filter := ozondomain.ReturnsFilter{}
	if scope == session.ScopeFBS {
		filter.LastFreeWaitingDay = &ozondomain.TimeRange{
			TimeFrom: window.StartTimestamp(),
			TimeTo:   window.EndTimestamp(),
		}
	}

	result := make([]ozondomain.Return, 0)
	var lastID int64

	for {
		var resp ozondomain.ReturnsResponse
		err := s.seller.Post(ctx, "/v3/returns/company/"+string(scope), ozondomain.ReturnsRequest{
			Filter: filter,
			LastID: lastID,
			Limit:  returnsPageLimit,
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar devoluções %s: %w", scope, err)
		}

		result = append(result, resp.Returns...)

		if len(resp.Returns) < returnsPageLimit {
			return result, nil
		}

		next := resp.Returns[len(resp.Returns)-1].ID
		if next == lastID {
			return result, nil
		}
		lastID = next
	}
}

// formatMoment converte "2024-06-11T10:20:30.123Z" em "2024-06-11 10:20:30"
func formatMoment(moment string) string {
	formatted := strings.ReplaceAll(moment, "T", " ")
	formatted = strings.ReplaceAll(formatted, "Z", "")
	if i := strings.Index(formatted, "."); i >= 0 {
		formatted = formatted[:i]
	}
	return formatted
}

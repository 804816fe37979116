// Package payment は請求書の支払い処理を提供する。
//
// 決済代行サービスとの連携は未実装で、StubGatewayが固定の client secret を返す。
package payment

import (
	"context"
	"log/slog"

	"github.com/hitoshi/portal/internal/metrics"
	"github.com/hitoshi/portal/internal/model"
)

// StubClientSecret はStubGatewayが返す固定の client secret。
const StubClientSecret = "pi_1234_secret_ABC"

// Gateway は支払いインテントを発行する決済代行のインターフェース。
type Gateway interface {
	// CreatePaymentIntent は請求書の支払いインテントを発行する。
	CreatePaymentIntent(ctx context.Context, invoiceID int64) (*model.PaymentIntent, error)
}

// StubGateway は決済代行を呼び出さないGateway実装。
// 請求書の存在確認も行わない。
type StubGateway struct {
	metrics metrics.MetricsCollector
}

// NewStubGateway はStubGatewayを生成する。
// collectorがnilの場合はメトリクスを記録しない。
func NewStubGateway(collector metrics.MetricsCollector) *StubGateway {
	if collector == nil {
		collector = metrics.Nop{}
	}
	return &StubGateway{metrics: collector}
}

// CreatePaymentIntent は任意の請求書IDに対して固定の支払いインテントを返す。
func (g *StubGateway) CreatePaymentIntent(ctx context.Context, invoiceID int64) (*model.PaymentIntent, error) {
	// TODO: 決済代行連携の実装時に、catalogの請求書と突き合わせて存在しないIDを404にする
	g.metrics.RecordPaymentIntent()
	slog.Info("payment intent issued by stub gateway",
		slog.Int64("invoice_id", invoiceID),
	)
	return &model.PaymentIntent{ClientSecret: StubClientSecret}, nil
}

var _ Gateway = (*StubGateway)(nil)

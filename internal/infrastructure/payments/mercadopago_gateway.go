package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"

	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway charges rent through the Mercado Pago payments API. In mock
// mode every payment is approved without a network call.
type MercadoPagoGateway struct {
	client   paymentCreator
	mockMode bool
	now      func() time.Time
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool, logger *zap.Logger) (*MercadoPagoGateway, error) {
	logger = logging.OrNop(logger).Named("gateway")
	if mock {
		logger.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now, logger: logger}, nil
	}

	if accessToken == "" {
		logger.Warn("missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now, logger: logger}, nil
}

// Charge submits payload as a Mercado Pago payment request.
func (g *MercadoPagoGateway) Charge(ctx context.Context, payload json.RawMessage) (interfaces.RentCharge, error) {
	if g != nil && g.mockMode {
		return g.simulate(payload)
	}
	if g == nil || g.client == nil {
		return interfaces.RentCharge{}, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		g.logger.Warn("charge payload rejected", zap.Error(err))
		return interfaces.RentCharge{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Error("charge failed", zap.Error(err))
		return interfaces.RentCharge{}, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.RentCharge{}, err
	}
	charge := interfaces.RentCharge{ProviderID: fmt.Sprint(resp.ID), Status: resp.Status, Raw: raw}
	g.logger.Info("charged", zap.String("provider_payment_id", charge.ProviderID), zap.String("provider_status", charge.Status))
	return charge, nil
}

// simulate approves every charge, echoing the request fields back like the
// provider would.
func (g *MercadoPagoGateway) simulate(payload json.RawMessage) (interfaces.RentCharge, error) {
	echo := map[string]any{}
	if json.Valid(payload) {
		_ = json.Unmarshal(payload, &echo)
	}
	if echo == nil {
		echo = map[string]any{}
	}

	at := g.now().UTC()
	charge := interfaces.RentCharge{ProviderID: "sim-" + strconv.FormatInt(at.UnixNano(), 36), Status: "approved"}
	echo["id"] = charge.ProviderID
	echo["status"] = charge.Status
	echo["status_detail"] = "accredited"
	for _, k := range []string{"date_created", "date_approved"} {
		if _, ok := echo[k]; !ok {
			echo[k] = at.Format(time.RFC3339)
		}
	}

	raw, err := json.Marshal(echo)
	if err != nil {
		return interfaces.RentCharge{}, err
	}
	charge.Raw = raw
	g.logger.Info("simulated charge", zap.String("provider_payment_id", charge.ProviderID))
	return charge, nil
}

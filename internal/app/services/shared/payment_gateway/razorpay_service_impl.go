package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	razorpayServiceInstance contracts.PaymentGatewayService
	onceRazorpayService     sync.Once
)

type razorpayService struct {
	BaseUrl    string
	KeyID      string
	KeySecret  string
	HttpClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewRazorpayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceRazorpayService.Do(func() {
		instance := &razorpayService{
			BaseUrl:   internalConfig.PaymentGateway.BaseUrl,
			KeyID:     internalConfig.PaymentGateway.KeyID,
			KeySecret: internalConfig.PaymentGateway.KeySecret,
			HttpClient: &http.Client{
				Timeout: 10 * time.Second,
			},
			Limiter: rate.NewLimiter(rate.Limit(internalConfig.PaymentGateway.RequestsPerSecond), 1),
			Log:     logger,
		}
		razorpayServiceInstance = instance
	})
	return razorpayServiceInstance
}

type createOrderPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (s *razorpayService) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*responses.GatewayOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("razorpayService.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("amount", amount),
		zap.String("receipt", receipt),
	)

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrGatewayCreateOrder(err)
	}

	payload := createOrderPayload{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/orders", s.BaseUrl), bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	request.SetBasicAuth(s.KeyID, s.KeySecret)
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	response, err := s.HttpClient.Do(request)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer response.Body.Close()

	if response.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrGatewayCreateOrder(fmt.Errorf("unexpected status code %d", response.StatusCode))
	}

	order := new(responses.GatewayOrder)
	if err := json.NewDecoder(response.Body).Decode(order); err != nil {
		return nil, exceptions.ErrGatewayDecodeResponse(err)
	}

	s.Log.Info("razorpayService.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
	)
	return order, nil
}

func (s *razorpayService) FetchOrder(ctx context.Context, orderID string) (*responses.GatewayOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("razorpayService.FetchOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrGatewayFetchOrder(err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/orders/%s", s.BaseUrl, orderID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	request.SetBasicAuth(s.KeyID, s.KeySecret)

	response, err := s.HttpClient.Do(request)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer response.Body.Close()

	if response.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrGatewayFetchOrder(fmt.Errorf("unexpected status code %d", response.StatusCode))
	}

	order := new(responses.GatewayOrder)
	if err := json.NewDecoder(response.Body).Decode(order); err != nil {
		return nil, exceptions.ErrGatewayDecodeResponse(err)
	}

	return order, nil
}

func (s *razorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	return utils.VerifyGatewaySignature(orderID, paymentID, signature, s.KeySecret)
}

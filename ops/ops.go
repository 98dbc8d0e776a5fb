package ops

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/sunwoo0067/dropship/fulfillment"
	"github.com/sunwoo0067/dropship/ledger"
	"github.com/sunwoo0067/dropship/payment"
	"github.com/sunwoo0067/dropship/shipping"
)

// Service is the operator diagnostics surface: balance lookup, manual
// deposit, transaction history, fulfillment trigger, health.
type Service struct {
	ledger      *ledger.Ledger
	coordinator *fulfillment.Coordinator
	logger      *zap.Logger
}

func NewService(l *ledger.Ledger, c *fulfillment.Coordinator) *Service {
	return &Service{
		ledger:      l,
		coordinator: c,
		logger:      zap.L().Named("ops"),
	}
}

// Register attaches the routes to the echo instance.
func (s *Service) Register(e *echo.Echo) {
	e.GET("/healthz", s.health)
	e.GET("/v1/credit/:supplier/:account", s.balance)
	e.GET("/v1/credit/:supplier/:account/transactions", s.transactions)
	e.POST("/v1/credit/deposit", s.deposit)
	e.POST("/v1/orders/:order/fulfill", s.fulfill)
}

type balanceResponse struct {
	SupplierID       string    `json:"supplier_id"`
	AccountName      string    `json:"account_name"`
	CurrentBalance   int64     `json:"current_balance"`
	ReservedBalance  int64     `json:"reserved_balance"`
	AvailableBalance int64     `json:"available_balance"`
	LastUpdated      time.Time `json:"last_updated"`
}

type transactionResponse struct {
	TransactionID string     `json:"transaction_id"`
	Type          string     `json:"type"`
	Amount        int64      `json:"amount"`
	Status        string     `json:"status"`
	Description   string     `json:"description"`
	OrderID       *string    `json:"order_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	FailureReason *string    `json:"failure_reason,omitempty"`
}

type depositRequest struct {
	SupplierID  string `json:"supplier_id"`
	AccountName string `json:"account_name"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) balance(c echo.Context) error {
	bal, err := s.ledger.GetBalance(c.Request().Context(), c.Param("supplier"), c.Param("account"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, balanceResponse{
		SupplierID:       bal.SupplierID,
		AccountName:      bal.AccountName,
		CurrentBalance:   bal.CurrentBalance,
		ReservedBalance:  bal.ReservedBalance,
		AvailableBalance: bal.AvailableBalance(),
		LastUpdated:      bal.LastUpdated,
	})
}

func (s *Service) transactions(c echo.Context) error {
	limit := intQueryParam(c, "limit", 50)
	offset := intQueryParam(c, "offset", 0)

	list, err := s.ledger.ListTransactions(c.Request().Context(), c.Param("supplier"), c.Param("account"), limit, offset)
	if err != nil {
		return s.fail(c, err)
	}
	out := make([]transactionResponse, 0, len(list))
	for _, ct := range list {
		out = append(out, transactionResponse{
			TransactionID: ct.TransactionID,
			Type:          string(ct.Type),
			Amount:        ct.Amount,
			Status:        string(ct.Status),
			Description:   ct.Description,
			OrderID:       ct.OrderID,
			CreatedAt:     ct.CreatedAt,
			CompletedAt:   ct.CompletedAt,
			FailureReason: ct.FailureReason,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Service) deposit(c echo.Context) error {
	var req depositRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}
	if req.SupplierID == "" || req.AccountName == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "supplier_id and account_name are required"})
	}

	txID, err := s.ledger.Deposit(c.Request().Context(), req.SupplierID, req.AccountName, req.Amount, req.Description)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"transaction_id": txID})
}

type fulfillRequest struct {
	Amount         int64            `json:"amount"`
	Method         payment.Method   `json:"method"`
	Carrier        shipping.Carrier `json:"carrier"`
	ShippingMethod shipping.Method  `json:"shipping_method"`
	Address        string           `json:"address"`
	Items          []shipping.Item  `json:"items"`
}

type fulfillResponse struct {
	Payment  *payment.Record    `json:"payment"`
	Shipment *shipping.Shipment `json:"shipment,omitempty"`
}

func (s *Service) fulfill(c echo.Context) error {
	var req fulfillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}
	if req.Method == "" {
		req.Method = payment.CreditMethod
	}

	res, err := s.coordinator.Fulfill(c.Request().Context(), c.Param("order"),
		fulfillment.PaymentRequest{Amount: req.Amount, Method: req.Method},
		shipping.Request{
			Carrier: req.Carrier,
			Method:  req.ShippingMethod,
			Address: req.Address,
			Items:   req.Items,
		},
	)
	if err != nil {
		switch {
		case ledger.IsCause(err, payment.ErrOrderNotFound), ledger.IsCause(err, fulfillment.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		case ledger.IsCause(err, payment.ErrUnsupportedMethod),
			ledger.IsCause(err, payment.ErrMissingSupplierInfo),
			ledger.IsCause(err, shipping.ErrUnknownCarrier):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		s.logger.Error("fulfillment failed", zap.String("order_id", c.Param("order")), zap.Error(err))
		resp := fulfillResponse{}
		if res != nil {
			resp.Payment = res.Payment
		}
		return c.JSON(http.StatusBadGateway, resp)
	}
	if !res.Payment.Status.Match(payment.CompletedPayment) {
		return c.JSON(http.StatusPaymentRequired, fulfillResponse{Payment: res.Payment})
	}
	return c.JSON(http.StatusCreated, fulfillResponse{Payment: res.Payment, Shipment: res.Shipment})
}

// fail maps the ledger taxonomy onto HTTP: business errors are 4xx with
// a reason, infrastructure faults are 5xx.
func (s *Service) fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case ledger.IsCause(err, ledger.ErrInvalidAmount):
		status = http.StatusBadRequest
	case ledger.IsCause(err, ledger.ErrBalanceNotFound),
		ledger.IsCause(err, ledger.ErrReservationNotFound):
		status = http.StatusNotFound
	case ledger.IsCause(err, ledger.ErrInsufficientFunds),
		ledger.IsCause(err, ledger.ErrAlreadyReserved),
		ledger.IsCause(err, ledger.ErrAlreadyFinal):
		status = http.StatusConflict
	case ledger.IsTransient(err):
		status = http.StatusServiceUnavailable
	default:
		s.logger.Error("unexpected error on diagnostics surface", zap.Error(err))
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}

func intQueryParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

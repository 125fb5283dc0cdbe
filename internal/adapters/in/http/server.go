// Package http exposes the marketplace over an echo HTTP API: public login
// and registration routes, client order routes, the rider board with claim
// and complete, and the admin surface. All authenticated routes carry a
// bearer token; the verified principal drives ownership and privilege
// checks.
package http

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"kabalen/internal/core/application/usecases/commands"
	"kabalen/internal/core/application/usecases/queries"
	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
	"kabalen/internal/core/ports"
	"kabalen/internal/pkg/errs"
)

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	TokenVerifier
	Issue(principal kernel.Principal) (string, error)
}

// Deps carries everything the server needs: one handler per operation, the
// token service, the artifact store, and the configured admin credentials.
type Deps struct {
	RegisterClient    commands.RegisterClientCommandHandler
	CreateClientOrder commands.CreateClientOrderCommandHandler
	CreateManualOrder commands.CreateManualOrderCommandHandler
	ClaimOrder        commands.ClaimOrderCommandHandler
	CompleteOrder     commands.CompleteOrderCommandHandler
	UploadProof       commands.UploadProofCommandHandler
	AssignRider       commands.AssignRiderCommandHandler
	RegisterRider     commands.RegisterRiderCommandHandler
	AdjustCredit      commands.AdjustCreditCommandHandler

	ClientOrders queries.GetClientOrdersQueryHandler
	RiderBoard   queries.GetRiderBoardQueryHandler
	AllOrders    queries.GetAllOrdersQueryHandler
	AllRiders    queries.GetAllRidersQueryHandler
	AuthClient   queries.AuthenticateClientQueryHandler
	AuthRider    queries.AuthenticateRiderQueryHandler

	Tokens    TokenService
	Artifacts ports.ArtifactStore

	// AdminUsername and AdminPasswordHash are the single admin identity,
	// configured at startup. The hash is bcrypt.
	AdminUsername     string
	AdminPasswordHash string
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	deps Deps
}

// NewServer creates the HTTP server over its dependencies.
func NewServer(deps Deps) *Server {
	return &Server{deps: deps}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/admin/login", s.AdminLogin)
	e.POST("/riders/login", s.RiderLogin)
	e.POST("/clients/login", s.ClientLogin)
	e.POST("/clients/register", s.RegisterClient)

	auth := bearerAuth(s.deps.Tokens)

	clients := e.Group("/clients", auth, requireKind(kernel.PrincipalClient))
	clients.POST("/orders", s.CreateClientOrder)
	clients.GET("/orders", s.GetClientOrders)

	riders := e.Group("/riders", auth, requireKind(kernel.PrincipalRider))
	riders.GET("/orders", s.GetRiderBoard)
	riders.POST("/orders/:id/claim", s.ClaimOrder)
	riders.POST("/orders/:id/complete", s.CompleteOrder)

	e.POST("/orders/:id/proof", s.UploadProof,
		auth, requireKind(kernel.PrincipalRider, kernel.PrincipalAdmin))

	admin := e.Group("/admin", auth, requireKind(kernel.PrincipalAdmin))
	admin.GET("/orders", s.GetAllOrders)
	admin.POST("/orders", s.CreateManualOrder)
	admin.PUT("/orders/:id/assign", s.AssignRider)
	admin.GET("/riders", s.GetAllRiders)
	admin.POST("/riders", s.RegisterRider)
	admin.POST("/riders/:id/credit", s.AdjustCredit)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// AdminLogin handles POST /admin/login. The admin is a single configured
// identity; failure is opaque whether the username or the password was wrong.
func (s *Server) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	if req.Username != s.deps.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(s.deps.AdminPasswordHash), []byte(req.Password)) != nil {
		return writeError(c, errs.NewAuthenticationError())
	}

	signed, err := s.deps.Tokens.Issue(kernel.NewAdminPrincipal())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{Token: signed, Role: "admin"})
}

// RiderLogin handles POST /riders/login.
func (s *Server) RiderLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	query, err := queries.NewAuthenticateRiderQuery(req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.deps.AuthRider.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	principal, err := kernel.NewPrincipal(kernel.PrincipalRider, resp.RiderID)
	if err != nil {
		return writeError(c, err)
	}
	signed, err := s.deps.Tokens.Issue(principal)
	if err != nil {
		return writeError(c, err)
	}

	credit := resp.Credit
	return c.JSON(http.StatusOK, loginResponse{
		Token:    signed,
		Role:     "rider",
		ID:       resp.RiderID.Int64(),
		Name:     resp.Name,
		Username: resp.Username,
		Phone:    resp.Phone,
		Credit:   &credit,
	})
}

// ClientLogin handles POST /clients/login.
func (s *Server) ClientLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	query, err := queries.NewAuthenticateClientQuery(req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.deps.AuthClient.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	principal, err := kernel.NewPrincipal(kernel.PrincipalClient, resp.ClientID)
	if err != nil {
		return writeError(c, err)
	}
	signed, err := s.deps.Tokens.Issue(principal)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:    signed,
		Role:     "client",
		ID:       resp.ClientID.Int64(),
		Name:     resp.Fullname,
		Username: resp.Username,
		Phone:    resp.Phone,
		Address:  resp.Address,
	})
}

// RegisterClient handles POST /clients/register. Multipart: text fields plus
// the two identity uploads (validId, selfie).
func (s *Server) RegisterClient(c echo.Context) error {
	ctx := c.Request().Context()

	validIDRef, err := s.saveFormFile(c, ctx, "validId")
	if err != nil {
		return writeError(c, err)
	}
	selfieRef, err := s.saveFormFile(c, ctx, "selfie")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewRegisterClientCommand(
		c.FormValue("fullname"),
		c.FormValue("address"),
		c.FormValue("phone"),
		c.FormValue("username"),
		c.FormValue("password"),
		validIDRef,
		selfieRef,
	)
	if err != nil {
		return writeError(c, err)
	}

	id, err := s.deps.RegisterClient.Handle(ctx, cmd)
	if err != nil {
		if errors.Is(err, commands.ErrUsernameIsTaken) {
			return writeErrorWithStatus(c, http.StatusBadRequest, err)
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: id.Int64()})
}

// CreateClientOrder handles POST /clients/orders.
func (s *Server) CreateClientOrder(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return writeError(c, errs.NewAuthenticationError())
	}

	var req clientOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	pickup, err := kernel.NewAddress(req.Pickup)
	if err != nil {
		return writeError(c, err)
	}
	dropoff, err := kernel.NewAddress(req.Dropoff)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateClientOrderCommand(
		principal.EntityID(), pickup, dropoff,
		req.Distance, req.Fee, req.Category, req.Notes,
	)
	if err != nil {
		return writeError(c, err)
	}

	id, err := s.deps.CreateClientOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: id.Int64()})
}

// GetClientOrders handles GET /clients/orders.
func (s *Server) GetClientOrders(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return writeError(c, errs.NewAuthenticationError())
	}

	query, err := queries.NewGetClientOrdersQuery(principal.EntityID())
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.deps.ClientOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toClientOrdersJSON(orders))
}

// GetRiderBoard handles GET /riders/orders.
func (s *Server) GetRiderBoard(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return writeError(c, errs.NewAuthenticationError())
	}

	query, err := queries.NewGetRiderBoardQuery(principal.EntityID())
	if err != nil {
		return writeError(c, err)
	}

	board, err := s.deps.RiderBoard.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toBoardJSON(board))
}

// ClaimOrder handles POST /riders/orders/:id/claim.
func (s *Server) ClaimOrder(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return writeError(c, errs.NewAuthenticationError())
	}

	orderID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, principal.EntityID())
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deps.ClaimOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /riders/orders/:id/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return writeError(c, errs.NewAuthenticationError())
	}

	orderID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, principal.EntityID())
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deps.CompleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadProof handles POST /orders/:id/proof. Multipart: "kind" field
// (pickup or dropoff) plus the photo under "file". Riders may only attach
// proof to orders they hold; the admin may attach to any open order.
func (s *Server) UploadProof(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return writeError(c, errs.NewAuthenticationError())
	}

	orderID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	kind, err := order.ProofKindFromString(c.FormValue("kind"))
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	ref, err := s.saveFormFileAs(c, ctx, "file", kind.String())
	if err != nil {
		return writeError(c, err)
	}

	proofRef, err := order.NewProofRef(ref)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUploadProofCommand(orderID, kind, proofRef, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deps.UploadProof.Handle(ctx, cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, proofResponse{Ref: ref})
}

// GetAllOrders handles GET /admin/orders.
func (s *Server) GetAllOrders(c echo.Context) error {
	orders, err := s.deps.AllOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toAdminOrdersJSON(orders))
}

// CreateManualOrder handles POST /admin/orders. With rider_id set the order
// enters the ledger already assigned.
func (s *Server) CreateManualOrder(c echo.Context) error {
	var req manualOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	pickup, err := kernel.NewAddress(req.Pickup)
	if err != nil {
		return writeError(c, err)
	}
	dropoff, err := kernel.NewAddress(req.Dropoff)
	if err != nil {
		return writeError(c, err)
	}

	riderID, err := optionalID(req.RiderID)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateManualOrderCommand(
		req.CustomerName, req.CustomerPhone,
		pickup, dropoff,
		req.Distance, req.Fee, req.Category, req.Notes,
		riderID,
	)
	if err != nil {
		return writeError(c, err)
	}

	id, err := s.deps.CreateManualOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: id.Int64()})
}

// AssignRider handles PUT /admin/orders/:id/assign. A null rider_id puts the
// order back on the board.
func (s *Server) AssignRider(c echo.Context) error {
	orderID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req assignRiderRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	riderID, err := optionalID(req.RiderID)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deps.AssignRider.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAllRiders handles GET /admin/riders.
func (s *Server) GetAllRiders(c echo.Context) error {
	riders, err := s.deps.AllRiders.Handle(c.Request().Context(), queries.NewGetAllRidersQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toRidersJSON(riders))
}

// RegisterRider handles POST /admin/riders.
func (s *Server) RegisterRider(c echo.Context) error {
	var req registerRiderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewRegisterRiderCommand(req.Name, req.Phone, req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	id, err := s.deps.RegisterRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrUsernameIsTaken) {
			return writeErrorWithStatus(c, http.StatusBadRequest, err)
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: id.Int64()})
}

// AdjustCredit handles POST /admin/riders/:id/credit.
func (s *Server) AdjustCredit(c echo.Context) error {
	riderID, err := kernel.IDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req adjustCreditRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewAdjustCreditCommand(riderID, req.Delta)
	if err != nil {
		return writeError(c, err)
	}

	balance, err := s.deps.AdjustCredit.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, creditResponse{Balance: balance})
}

// saveFormFile stores the upload named field, using the field name for the
// artifact prefix.
func (s *Server) saveFormFile(c echo.Context, ctx context.Context, field string) (string, error) {
	return s.saveFormFileAs(c, ctx, field, field)
}

// saveFormFileAs stores the upload named field under the given artifact
// prefix.
func (s *Server) saveFormFileAs(c echo.Context, ctx context.Context, field, prefix string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", errs.NewValueIsRequiredErrorWithCause(field, err)
	}
	return s.saveUpload(ctx, prefix, fh)
}

func (s *Server) saveUpload(ctx context.Context, prefix string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return s.deps.Artifacts.Save(ctx, prefix, fh.Filename, src)
}

// optionalID converts a nullable wire id into a nullable kernel id.
func optionalID(raw *int64) (*kernel.ID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.NewID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

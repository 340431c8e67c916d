package handler

import (
	"log/slog"
	"net/http"
	"time"

	"courier/internal/delivery/http/response"
	"courier/internal/domain/entity"
	"courier/internal/errors"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PackageHandler holds dependencies for the delivery-record handlers.
type PackageHandler struct {
	uc     usecase.PackageUsecase
	logger *slog.Logger
}

// NewPackageHandler is the constructor for PackageHandler, injected by Fx.
func NewPackageHandler(uc usecase.PackageUsecase, logger *slog.Logger) *PackageHandler {
	return &PackageHandler{
		uc:     uc,
		logger: logger,
	}
}

type createPackageRequest struct {
	Address string    `json:"address" validate:"required"`
	Owner   string    `json:"owner" validate:"required"`
	Weight  int       `json:"weight" validate:"required"`
	Date    time.Time `json:"date"`
}

type updatePackageStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type packageResponse struct {
	ID      int64     `json:"id"`
	Address string    `json:"address"`
	Owner   string    `json:"owner"`
	Weight  int       `json:"weight"`
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
}

func toPackageResponse(pkg *entity.Package) packageResponse {
	return packageResponse{
		ID:      pkg.ID,
		Address: pkg.Address,
		Owner:   pkg.Owner,
		Weight:  pkg.Weight,
		Status:  string(pkg.Status),
		Date:    pkg.Date,
	}
}

// CreatePackage records a new delivery.
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	var req createPackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	pkg, err := h.uc.CreatePackage(c.Request().Context(), &usecase.CreatePackageInput{
		Address: req.Address,
		Owner:   req.Owner,
		Weight:  req.Weight,
		Date:    req.Date,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPackageResponse(pkg), "Package created successfully")
}

// ListPackages returns all delivery records, newest first.
func (h *PackageHandler) ListPackages(c echo.Context) error {
	pkgs, err := h.uc.ListPackages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]packageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, toPackageResponse(pkg))
	}

	return response.Success(c, http.StatusOK, out, "Packages retrieved successfully")
}

// GetPackage returns a single delivery record.
func (h *PackageHandler) GetPackage(c echo.Context) error {
	packageID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Package id must be an integer")
	}

	pkg, err := h.uc.GetPackage(c.Request().Context(), packageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPackageResponse(pkg), "Package retrieved successfully")
}

// UpdatePackageStatus moves a package to the target delivery state.
func (h *PackageHandler) UpdatePackageStatus(c echo.Context) error {
	packageID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Package id must be an integer")
	}

	var req updatePackageStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	pkg, err := h.uc.UpdatePackageStatus(c.Request().Context(), packageID, entity.PackageStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPackageResponse(pkg), "Package status updated successfully")
}

// DeletePackage removes a delivery record.
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	packageID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Package id must be an integer")
	}

	if err := h.uc.DeletePackage(c.Request().Context(), packageID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

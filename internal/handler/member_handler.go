package handler

import (
	"errors"
	"net/http"

	"github.com/coacandes/member-service/internal/cqrs"
	"github.com/coacandes/member-service/internal/middleware"
	"github.com/coacandes/member-service/internal/models"
	"github.com/coacandes/member-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// MemberCommander defines the write-side operations used by MemberHandler.
type MemberCommander interface {
	CreateMember(cqrs.CreateMemberCommand) (*models.Member, error)
	UpdateMember(cqrs.UpdateMemberCommand) (*models.MemberView, error)
	DeleteMember(cqrs.DeleteMemberCommand) error
}

// MemberQuerier defines the read-side operations used by MemberHandler.
type MemberQuerier interface {
	GetMember(cqrs.GetMemberQuery) (*models.MemberView, error)
	GetMemberByIdentification(cqrs.GetMemberByIdentificationQuery) (*models.MemberView, error)
	ListMembers(cqrs.ListMembersQuery) ([]*models.MemberView, error)
}

// MemberHandler routes requests to the command or query service as appropriate.
type MemberHandler struct {
	commands MemberCommander
	queries  MemberQuerier
}

type CreateMemberRequest struct {
	Identification     string `json:"identification" validate:"required,numeric,min=10,max=13"`
	IdentificationType string `json:"identificationType" validate:"required,oneof=INDIVIDUAL ORGANIZATION"`
	Names              string `json:"names" validate:"required"`
	Surnames           string `json:"surnames" validate:"required"`
	Email              string `json:"email" validate:"omitempty,email"`
	Phone              string `json:"phone" validate:"omitempty,numeric,min=9,max=10"`
	Address            string `json:"address"`
}

type UpdateMemberRequest struct {
	Identification     string `json:"identification" validate:"required,numeric,min=10,max=13"`
	IdentificationType string `json:"identificationType" validate:"required,oneof=INDIVIDUAL ORGANIZATION"`
	Names              string `json:"names" validate:"required"`
	Surnames           string `json:"surnames" validate:"required"`
	Email              string `json:"email" validate:"omitempty,email"`
	Phone              string `json:"phone" validate:"omitempty,numeric,min=9,max=10"`
	Address            string `json:"address"`
	Active             bool   `json:"active"`
}

func NewMemberHandler(commands MemberCommander, queries MemberQuerier) *MemberHandler {
	return &MemberHandler{commands: commands, queries: queries}
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}
	// The numeric tag admits signs and decimal points; the registry wants
	// plain digits only.
	if !utils.ValidateIdentification(req.Identification) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Identification must be 10 to 13 digits")
		return
	}

	member, err := h.commands.CreateMember(cqrs.CreateMemberCommand{
		Identification:     req.Identification,
		IdentificationType: req.IdentificationType,
		Names:              req.Names,
		Surnames:           req.Surnames,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicateIdentification) {
			middleware.RespondWithError(c, http.StatusConflict, "A member with this identification already exists")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	view, err := h.queries.GetMember(cqrs.GetMemberQuery{MemberID: c.Param("memberId")})
	if err != nil {
		if errors.Is(err, models.ErrMemberNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "Member not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get member")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *MemberHandler) GetMemberByIdentification(c *gin.Context) {
	view, err := h.queries.GetMemberByIdentification(cqrs.GetMemberByIdentificationQuery{
		Identification: c.Param("identification"),
	})
	if err != nil {
		if errors.Is(err, models.ErrMemberNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "Member not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get member")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	views, err := h.queries.ListMembers(cqrs.ListMembersQuery{})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}
	if !utils.ValidateIdentification(req.Identification) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Identification must be 10 to 13 digits")
		return
	}

	view, err := h.commands.UpdateMember(cqrs.UpdateMemberCommand{
		MemberID:           c.Param("memberId"),
		Identification:     req.Identification,
		IdentificationType: req.IdentificationType,
		Names:              req.Names,
		Surnames:           req.Surnames,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		Active:             req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMemberNotFound):
			middleware.RespondWithError(c, http.StatusNotFound, "Member not found")
		case errors.Is(err, models.ErrDuplicateIdentification):
			middleware.RespondWithError(c, http.StatusConflict, "A member with this identification already exists")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update member")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	err := h.commands.DeleteMember(cqrs.DeleteMemberCommand{MemberID: c.Param("memberId")})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMemberNotFound):
			middleware.RespondWithError(c, http.StatusNotFound, "Member not found")
		case errors.Is(err, models.ErrActiveAccounts):
			middleware.RespondWithError(c, http.StatusConflict, "Cannot delete a member with active accounts")
		case errors.Is(err, models.ErrAccountsUnavailable), errors.Is(err, models.ErrAccountsProtocol):
			middleware.RespondWithError(c, http.StatusServiceUnavailable, "Cannot verify active accounts right now, try again later")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete member")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

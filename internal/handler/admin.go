package handler

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rosae/theatre-ops/internal/config"
	"github.com/rosae/theatre-ops/internal/model"
	"github.com/rosae/theatre-ops/internal/repository"
)

// AdminHandler implements staff account management and the audit trail.
// All routes require the ADMIN role.  The seed administrator configured
// via AdminEmail can neither be demoted nor deleted.
type AdminHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Tokens   *repository.TokenRepo
	Activity *repository.ActivityRepo
	Log      *zap.Logger
}

func NewAdminHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo,
	act *repository.ActivityRepo, log *zap.Logger) *AdminHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminHandler{Cfg: cfg, Users: u, Tokens: t, Activity: act, Log: log}
}

type createUserReq struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type roleReq struct {
	Role string `json:"role"`
}

// CreateUser creates a staff account.  Role defaults to EMPLOYEE.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleEmployee
	}
	if role != model.RoleAdmin && role != model.RoleEmployee {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be ADMIN or EMPLOYEE"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password,
		strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName), role, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		h.Log.Error("create user failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	if err := h.Activity.Log(ctx, userID(c), "CREATE", "user", uid, req.Email+" as "+role); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err))
	}

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	return c.JSON(http.StatusCreated, u)
}

// ListUsers returns all staff accounts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRole changes an account's role.
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role != model.RoleAdmin && role != model.RoleEmployee {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be ADMIN or EMPLOYEE"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if strings.EqualFold(u.Email, h.Cfg.AdminEmail) && role != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "seed administrator cannot be demoted"})
	}

	if err := h.Users.UpdateRole(ctx, u.ID, role); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		h.Log.Error("update role failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update role failed"})
	}
	if err := h.Activity.Log(ctx, userID(c), "UPDATE", "user", u.ID, "role="+role); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err))
	}
	u.Role = role
	return c.JSON(http.StatusOK, u)
}

// DeleteUser removes an account and revokes its sessions.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if strings.EqualFold(u.Email, h.Cfg.AdminEmail) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "seed administrator cannot be deleted"})
	}

	_ = h.Tokens.RevokeAllForUser(ctx, u.ID)
	if err := h.Users.Delete(ctx, u.ID); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		h.Log.Error("delete user failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete user failed"})
	}
	if err := h.Activity.Log(ctx, userID(c), "DELETE", "user", u.ID, u.Email); err != nil {
		h.Log.Warn("activity log failed", zap.Error(err))
	}
	return c.NoContent(http.StatusNoContent)
}

// ActivityLogs returns recent audit entries, newest first.
func (h *AdminHandler) ActivityLogs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.Activity.List(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

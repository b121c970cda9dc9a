package components

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"hostpanel/internal/catalog"
	"hostpanel/internal/httpx"
	"hostpanel/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Handler serves the admin components endpoint.
type Handler struct {
	db  *gorm.DB
	svc *catalog.Service
}

// NewHandler creates a components handler.
func NewHandler(db *gorm.DB, svc *catalog.Service) *Handler {
	return &Handler{db: db, svc: svc}
}

// List serves filtered, paginated catalog reads.
// GET /api/v1/components
func (h *Handler) List(c *gin.Context) {
	params := catalog.ListParams{
		Type:         c.Query("type"),
		Availability: c.Query("availability"),
		Search:       c.Query("search"),
		Sort:         c.Query("sort"),
	}

	if v := c.Query("enabled"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			httpx.FailErr(c, httpx.ErrValidation("enabled must be a boolean"))
			return
		}
		params.Enabled = &enabled
	}

	if params.Availability != "" && !catalog.ValidFilter(params.Availability) {
		httpx.FailErr(c, httpx.ErrValidation("availability must be one of available, out_of_stock, not_in_datapacket"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(catalog.DefaultPageSize)))
	if limit < 1 || limit > catalog.MaxPageSize {
		limit = catalog.DefaultPageSize
	}
	params.Page = page
	params.Limit = limit

	items, total, err := h.svc.List(params)
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabase("failed to list components", err))
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	httpx.OKList(c, items, httpx.ListMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	})
}

// Sync triggers one catalog sync run.
// POST /api/v1/components
func (h *Handler) Sync(c *gin.Context) {
	result, err := h.svc.Sync(c.Request.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrSyncInProgress) {
			httpx.FailErr(c, httpx.ErrConflict(err.Error()))
			return
		}
		httpx.FailErr(c, httpx.ErrInternal("sync failed", err))
		return
	}
	httpx.OK(c, result)
}

// UpdatePayload is the admin-editable subset of a component.
type UpdatePayload struct {
	IsEnabled   *bool          `json:"is_enabled"`
	AdminNotes  *string        `json:"admin_notes"`
	CustomName  *string        `json:"custom_name"`
	CustomPrice *float64       `json:"custom_price"`
	SortOrder   *int           `json:"sort_order"`
	Specs       map[string]any `json:"specs"`
}

// UpdateRequest is the PATCH body.
type UpdateRequest struct {
	ID      string         `json:"id"`
	Updates *UpdatePayload `json:"updates"`
}

// Update applies an audited admin mutation to one component.
// PATCH /api/v1/components
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrValidation("invalid request body"))
		return
	}
	if req.ID == "" {
		httpx.FailErr(c, httpx.ErrValidation("id is required"))
		return
	}
	if req.Updates == nil {
		httpx.FailErr(c, httpx.ErrValidation("updates is required"))
		return
	}

	var comp model.Component
	if err := h.db.Where("id = ?", req.ID).First(&comp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("component not found"))
		} else {
			httpx.FailErr(c, httpx.ErrDatabase("failed to load component", err))
		}
		return
	}

	u := req.Updates
	updates := map[string]interface{}{}
	oldValues := map[string]any{}
	newValues := map[string]any{}

	if u.IsEnabled != nil {
		updates["is_enabled"] = *u.IsEnabled
		oldValues["is_enabled"] = comp.IsEnabled
		newValues["is_enabled"] = *u.IsEnabled
	}
	if u.AdminNotes != nil {
		updates["admin_notes"] = *u.AdminNotes
		oldValues["admin_notes"] = comp.AdminNotes
		newValues["admin_notes"] = *u.AdminNotes
	}
	if u.CustomName != nil {
		updates["custom_name"] = *u.CustomName
		oldValues["custom_name"] = comp.CustomName
		newValues["custom_name"] = *u.CustomName
	}
	if u.CustomPrice != nil {
		updates["custom_price"] = *u.CustomPrice
		oldValues["custom_price"] = comp.CustomPrice
		newValues["custom_price"] = *u.CustomPrice
	}
	if u.SortOrder != nil {
		updates["sort_order"] = *u.SortOrder
		oldValues["sort_order"] = comp.SortOrder
		newValues["sort_order"] = *u.SortOrder
	}
	if u.Specs != nil {
		specsJSON, err := json.Marshal(u.Specs)
		if err != nil {
			httpx.FailErr(c, httpx.ErrValidation("specs must be a JSON object"))
			return
		}
		updates["specs"] = datatypes.JSON(specsJSON)
		if len(comp.Specs) > 0 {
			oldValues["specs"] = json.RawMessage(comp.Specs)
		} else {
			oldValues["specs"] = nil
		}
		newValues["specs"] = u.Specs
	}

	if len(updates) == 0 {
		httpx.FailErr(c, httpx.ErrValidation("updates contains no editable fields"))
		return
	}

	action := model.AdminActionUpdated
	if u.IsEnabled != nil && *u.IsEnabled != comp.IsEnabled {
		if *u.IsEnabled {
			action = model.AdminActionEnabled
		} else {
			action = model.AdminActionDisabled
		}
	}

	oldJSON, err := json.Marshal(oldValues)
	if err != nil {
		httpx.FailErr(c, httpx.ErrInternal("failed to encode audit entry", err))
		return
	}
	newJSON, err := json.Marshal(newValues)
	if err != nil {
		httpx.FailErr(c, httpx.ErrInternal("failed to encode audit entry", err))
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Component{}).Where("id = ?", comp.ID).Updates(updates).Error; err != nil {
			return err
		}
		entry := model.AdminActionLog{
			ComponentID: comp.ID,
			AdminUserID: c.GetInt("uid"),
			Action:      action,
			OldValues:   oldJSON,
			NewValues:   newJSON,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabase("failed to update component", err))
		return
	}

	httpx.OK(c, gin.H{"success": true})
}

// ResetRequest is the DELETE body.
type ResetRequest struct {
	ConfirmReset bool `json:"confirmReset"`
}

// Reset deletes the whole catalog. Guarded by an explicit confirmation flag;
// the bulk path skips per-row audit logging.
// DELETE /api/v1/components
func (h *Handler) Reset(c *gin.Context) {
	var req ResetRequest
	_ = c.ShouldBindJSON(&req)

	if !req.ConfirmReset {
		httpx.FailErr(c, httpx.ErrValidation("confirmReset must be true to delete all components"))
		return
	}

	var deleted int64
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Component{}).Count(&deleted).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&model.Component{}).Error
	})
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabase("failed to reset components", err))
		return
	}

	httpx.OK(c, gin.H{
		"success":      true,
		"deletedCount": deleted,
		"message":      fmt.Sprintf("deleted %d components", deleted),
	})
}

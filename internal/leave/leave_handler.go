package leave

import (
	"net/http"
	"strconv"

	"go-leave/internal/domain"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	category, err := domain.ParseCategory(req.LeaveType)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	l, err := h.service.Submit(c.Request.Context(), req.EmployeeID, startDate, endDate, category, req.Reason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, mapToResponse(l), nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	leaves, err := h.service.All(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp := mapToListResponse(leaves)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	start, end := response.Paginate(len(resp), page, pageSize)
	meta := response.NewPaginationMeta(int64(len(resp)), page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetPending(c *gin.Context) {
	leaves, err := h.service.PendingQueue(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapToListResponse(leaves), nil)
}

func (h *Handler) GetById(c *gin.Context) {
	id, err := parseLeaveID(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	l, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapToResponse(l), nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	leaves, err := h.service.HistoryOf(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapToListResponse(leaves), nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.review(c, DecisionApprove)
}

func (h *Handler) Reject(c *gin.Context) {
	h.review(c, DecisionReject)
}

func (h *Handler) review(c *gin.Context, decision Decision) {
	ctx := c.Request.Context()

	id, err := parseLeaveID(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http review leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	processed, err := h.service.Review(ctx, id, decision, req.ReviewerID, req.Comment)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	l, err := h.service.Get(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ReviewResponse{
		Processed: processed,
		Leave:     mapToResponse(l),
	}, nil)
}

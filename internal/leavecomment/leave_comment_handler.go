package leavecomment

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	leavecommenterrors "github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/leavecomment/errors"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/apperror"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/contextutil"
	"github.com/Kaveesha-Silva-OrangeHRM/orangehrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave_comment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave_comment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave comment request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// requestScope reads the principal and the leave request id from the path.
func (h *Handler) requestScope(c *gin.Context) (contextutil.Principal, int64, error) {
	p, ok := contextutil.GetPrincipal(c.Request.Context())
	if !ok {
		return contextutil.Principal{}, 0, apperror.ErrUnauthorized
	}

	id, err := strconv.ParseInt(c.Param("leaveRequestId"), 10, 64)
	if err != nil || id <= 0 {
		return contextutil.Principal{}, 0, leavecommenterrors.ErrInvalidLeaveRequestID
	}
	return p, id, nil
}

func (h *Handler) List(c *gin.Context) {
	p, leaveRequestID, err := h.requestScope(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Debug("http list leave comments", zap.Int64("leave_request_id", leaveRequestID))

	var q ListLeaveCommentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, leavecommenterrors.ErrInvalidRequestBody.WithCause(err))
		return
	}

	result, err := h.service.List(c.Request.Context(), p, leaveRequestID, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(result.Total, result.Offset, result.Limit)
	response.Success(c, http.StatusOK, result.Items, &meta)
}

func (h *Handler) Create(c *gin.Context) {
	p, leaveRequestID, err := h.requestScope(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Debug("http create leave comment", zap.Int64("leave_request_id", leaveRequestID))

	// An empty body or a mistyped field still reaches the service so lookups and
	// access run before the body rules. Only unparsable JSON stops here.
	var req CreateLeaveCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			h.logger.Warn("http create leave comment decode failed", zap.Error(err))
			h.writeServiceError(c, leavecommenterrors.ErrInvalidRequestBody.WithCause(err))
			return
		}
		req.TypeErrors = append(req.TypeErrors, typeErr.Field)
	}

	resp, err := h.service.Create(c.Request.Context(), p, leaveRequestID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// Delete never touches the store.
func (h *Handler) Delete(c *gin.Context) {
	p, _ := contextutil.GetPrincipal(c.Request.Context())
	id, _ := strconv.ParseInt(c.Param("leaveRequestId"), 10, 64)

	// the service always refuses
	h.writeServiceError(c, h.service.Delete(c.Request.Context(), p, id))
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"lifelink/internal/delivery/http/response"
	"lifelink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CommentHandler holds dependencies for the public testimonial feed
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(commentUC usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{commentUC: commentUC, logger: logger}
}

// PostCommentRequest represents the request body for posting a comment
type PostCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// List handles GET /comments, the public feed
func (h *CommentHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	comments, err := h.commentUC.ListComments(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, comments, "")
}

// Post handles POST /comments
func (h *CommentHandler) Post(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req PostCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentUC.PostComment(c.Request().Context(), profile, req.Comment)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, comment, "Comment posted")
}

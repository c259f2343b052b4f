package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/globalpulse24/newsroom/internal/core/ports"
)

// HeaderIdempotencyKey lets publishers safely retry a submission.
const HeaderIdempotencyKey = "Idempotency-Key"

// ArticleHandler handles HTTP requests for article submission and moderation.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Submit handles POST /news/submit.
//
// @Summary      Submit an article for moderation
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      submitArticleRequest  true   "Article"
// @Success      201              {object}  articleResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /news/submit [post]
func (h *ArticleHandler) Submit(c echo.Context) error {
	var req submitArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.service.Submit(c.Request().Context(), ports.SubmitArticleInput{
		Title:          req.Title,
		Content:        req.Content,
		Author:         req.Author,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toArticleResponse(article))
}

// Live handles GET /news/live.
//
// @Summary      List approved articles, newest first
// @Tags         news
// @Produce      json
// @Success      200  {array}   articleResponse
// @Failure      500  {object}  errorResponse
// @Router       /news/live [get]
func (h *ArticleHandler) Live(c echo.Context) error {
	articles, err := h.service.ListLive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleListResponse(articles))
}

// Pending handles GET /admin/pending.
//
// @Summary      List articles awaiting approval, newest first
// @Tags         admin
// @Produce      json
// @Security     AdminToken
// @Success      200  {array}   articleResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /admin/pending [get]
func (h *ArticleHandler) Pending(c echo.Context) error {
	articles, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleListResponse(articles))
}

// Approve handles PUT /admin/approve/:id.
//
// @Summary      Approve an article
// @Tags         admin
// @Produce      json
// @Security     AdminToken
// @Param        id   path      string  true  "Article ID"
// @Success      200  {object}  articleResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /admin/approve/{id} [put]
func (h *ArticleHandler) Approve(c echo.Context) error {
	article, err := h.service.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

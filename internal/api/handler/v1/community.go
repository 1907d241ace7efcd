package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/neuroljus/neurohus/internal/api/handler/v1/request"
	"github.com/neuroljus/neurohus/internal/api/handler/v1/response"
	"github.com/neuroljus/neurohus/internal/domain"
)

type ReplyCreator interface {
	CreateReply(ctx context.Context, threadID, authorID, content string) (domain.Reply, error)
}

type CommunityService interface {
	ReplyCreator
	Categories(ctx context.Context) ([]domain.ForumCategory, error)
	CreateThread(ctx context.Context, categoryID, authorID, title, content string) (domain.Thread, error)
	ListThreads(ctx context.Context, categoryID string, page, perPage int) (domain.ThreadPage, error)
	GetThread(ctx context.Context, id string) (domain.ThreadWithReplies, error)
	CreateCircle(ctx context.Context, name, description, creatorID string, members []string) (domain.Circle, error)
	UserCircles(ctx context.Context, userID string) ([]domain.Circle, error)
	AddMember(ctx context.Context, circleID, userID string) (domain.Circle, error)
	RemoveMember(ctx context.Context, circleID, userID string) (domain.Circle, error)
	Moderate(ctx context.Context, contentType domain.ContentType, id string, action domain.ModerationAction) error
	Statistics(ctx context.Context) (domain.CommunityStatistics, error)
	Overview(ctx context.Context) (domain.CommunityOverview, error)
}

type CommunityHandler struct {
	svc      CommunityService
	hub      *LiveHub
	upgrader websocket.Upgrader
}

func NewCommunityHandler(svc CommunityService, hub *LiveHub, upgrader websocket.Upgrader) *CommunityHandler {
	return &CommunityHandler{
		svc:      svc,
		hub:      hub,
		upgrader: upgrader,
	}
}

// HandleGetOverview godoc
// @Summary      Community overview
// @Tags         community
// @Produce      json
// @Success      200  {object}  domain.CommunityOverview
// @Failure      500  {object}  response.Err
// @Router       /community/overview [get]
func (h *CommunityHandler) HandleGetOverview(ctx *gin.Context) {
	overview, err := h.svc.Overview(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetOverview -> h.svc.Overview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// HandleGetStatistics godoc
// @Summary      Forum and circle statistics
// @Tags         community
// @Produce      json
// @Success      200  {object}  domain.CommunityStatistics
// @Failure      500  {object}  response.Err
// @Router       /community/statistics [get]
func (h *CommunityHandler) HandleGetStatistics(ctx *gin.Context) {
	stats, err := h.svc.Statistics(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetStatistics -> h.svc.Statistics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleListCategories godoc
// @Summary      Forum categories with thread counts
// @Tags         community
// @Produce      json
// @Success      200  {array}   domain.ForumCategory
// @Failure      500  {object}  response.Err
// @Router       /community/categories [get]
func (h *CommunityHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.Categories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListCategories -> h.svc.Categories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleListThreads godoc
// @Summary      List threads
// @Description  Most recent activity first
// @Tags         community
// @Produce      json
// @Param        category_id  query     string  false  "Category"
// @Param        page         query     int     false  "Page (default 1)"
// @Param        per_page     query     int     false  "Threads per page (default 20)"
// @Success      200          {object}  domain.ThreadPage
// @Failure      400          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /community/threads [get]
func (h *CommunityHandler) HandleListThreads(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("ogiltig sida: %q", ctx.Query("page"))))
		return
	}
	perPage, err := strconv.Atoi(ctx.DefaultQuery("per_page", "20"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("ogiltigt antal per sida: %q", ctx.Query("per_page"))))
		return
	}

	threads, err := h.svc.ListThreads(ctx.Request.Context(), ctx.Query("category_id"), page, perPage)
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleListThreads -> h.svc.ListThreads", err))
		return
	}

	ctx.JSON(http.StatusOK, threads)
}

// HandleCreateThread godoc
// @Summary      Start a thread
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateThreadRequest  true  "Thread"
// @Success      201    {object}  domain.Thread
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /community/threads [post]
func (h *CommunityHandler) HandleCreateThread(ctx *gin.Context) {
	var input request.CreateThreadRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	thread, err := h.svc.CreateThread(ctx.Request.Context(), input.CategoryID, input.AuthorID, input.Title, input.Content)
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCreateThread -> h.svc.CreateThread", err))
		return
	}

	ctx.JSON(http.StatusCreated, thread)
}

// HandleGetThread godoc
// @Summary      Thread with its replies
// @Tags         community
// @Produce      json
// @Param        threadID  path      string  true  "Thread ID"
// @Success      200       {object}  domain.ThreadWithReplies
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /community/threads/{threadID} [get]
func (h *CommunityHandler) HandleGetThread(ctx *gin.Context) {
	thread, err := h.svc.GetThread(ctx.Request.Context(), ctx.Param("threadID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleGetThread -> h.svc.GetThread", err))
		return
	}

	ctx.JSON(http.StatusOK, thread)
}

// HandleCreateReply godoc
// @Summary      Reply to a thread
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        threadID  path      string                      true  "Thread ID"
// @Param        input     body      request.CreateReplyRequest  true  "Reply"
// @Success      201       {object}  domain.Reply
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /community/threads/{threadID}/replies [post]
func (h *CommunityHandler) HandleCreateReply(ctx *gin.Context) {
	var input request.CreateReplyRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reply, err := h.svc.CreateReply(ctx.Request.Context(), ctx.Param("threadID"), input.AuthorID, input.Content)
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCreateReply -> h.svc.CreateReply", err))
		return
	}

	ctx.JSON(http.StatusCreated, reply)
}

// HandleLive godoc
// @Summary      Live replies of a thread
// @Description  Upgrades to a websocket. New replies arrive as JSON events; a client may post a reply by sending {"author_id","content"}.
// @Tags         community
// @Param        threadID  path      string  true  "Thread ID"
// @Success      101       {string}  string  "Switching Protocols"
// @Failure      404       {object}  response.Err
// @Failure      503       {object}  response.Err
// @Router       /community/threads/{threadID}/live [get]
func (h *CommunityHandler) HandleLive(ctx *gin.Context) {
	threadID := ctx.Param("threadID")

	// The thread has to exist before the handshake so the client gets a
	// proper 404 instead of a closed socket.
	if _, err := h.svc.GetThread(ctx.Request.Context(), threadID); err != nil {
		response.RenderErr(ctx, serviceErr("HandleLive -> h.svc.GetThread", err))
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.String("thread_id", threadID), zap.Error(err))
		return
	}

	client, ok := h.hub.subscribe(conn, threadID)
	if !ok {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "servern stängs"))
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h.hub, h.svc)
}

// HandleModerate godoc
// @Summary      Moderate a thread or a reply
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        input  body  request.ModerateRequest  true  "Decision"
// @Success      204
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /community/moderate [post]
func (h *CommunityHandler) HandleModerate(ctx *gin.Context) {
	var input request.ModerateRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.svc.Moderate(ctx.Request.Context(), domain.ContentType(input.ContentType), input.ContentID, input.Action())
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleModerate -> h.svc.Moderate", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateCircle godoc
// @Summary      Create a private circle
// @Tags         circles
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCircleRequest  true  "Circle"
// @Success      201    {object}  domain.Circle
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /community/circles [post]
func (h *CommunityHandler) HandleCreateCircle(ctx *gin.Context) {
	var input request.CreateCircleRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	circle, err := h.svc.CreateCircle(ctx.Request.Context(), input.Name, input.Description, input.CreatorID, input.Members)
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleCreateCircle -> h.svc.CreateCircle", err))
		return
	}

	ctx.JSON(http.StatusCreated, circle)
}

// HandleGetUserCircles godoc
// @Summary      Circles a user belongs to
// @Tags         circles
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {array}   domain.Circle
// @Failure      500     {object}  response.Err
// @Router       /community/users/{userID}/circles [get]
func (h *CommunityHandler) HandleGetUserCircles(ctx *gin.Context) {
	circles, err := h.svc.UserCircles(ctx.Request.Context(), ctx.Param("userID"))
	if err != nil {
		err = fmt.Errorf("HandleGetUserCircles -> h.svc.UserCircles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, circles)
}

// HandleAddMember godoc
// @Summary      Add a member to a circle
// @Tags         circles
// @Accept       json
// @Produce      json
// @Param        circleID  path      string               true  "Circle ID"
// @Param        input     body      request.UserRequest  true  "Member"
// @Success      200       {object}  response.Members
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /community/circles/{circleID}/members [post]
func (h *CommunityHandler) HandleAddMember(ctx *gin.Context) {
	var input request.UserRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	circle, err := h.svc.AddMember(ctx.Request.Context(), ctx.Param("circleID"), input.UserID)
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleAddMember -> h.svc.AddMember", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Members{Circle: circle, Message: "Medlemmen lades till"})
}

// HandleRemoveMember godoc
// @Summary      Remove a member from a circle
// @Description  The creator cannot be removed
// @Tags         circles
// @Produce      json
// @Param        circleID  path      string  true  "Circle ID"
// @Param        userID    path      string  true  "Member"
// @Success      200       {object}  response.Members
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /community/circles/{circleID}/members/{userID} [delete]
func (h *CommunityHandler) HandleRemoveMember(ctx *gin.Context) {
	circle, err := h.svc.RemoveMember(ctx.Request.Context(), ctx.Param("circleID"), ctx.Param("userID"))
	if err != nil {
		response.RenderErr(ctx, serviceErr("HandleRemoveMember -> h.svc.RemoveMember", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Members{Circle: circle, Message: "Medlemmen togs bort"})
}

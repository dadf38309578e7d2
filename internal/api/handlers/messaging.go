package handlers

import (
	"net/http"

	"gestman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultDeliveryLogLimit = 50

// MessagingHandler handles bot settings, chat channels and delivery logs
type MessagingHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewMessagingHandler creates a new messaging handler
func NewMessagingHandler(notificationService service.NotificationServiceInterface) *MessagingHandler {
	return &MessagingHandler{notificationService: notificationService}
}

// GetSettings handles GET /messaging/settings
// @Summary Get messaging settings
// @Description The bot token is never returned, only whether one is configured and a masked hint
// @Tags messaging
// @Produce json
// @Success 200 {object} service.MessagingSettingsResponse
// @Router /messaging/settings [get]
func (h *MessagingHandler) GetSettings(c *gin.Context) {
	settings, err := h.notificationService.GetSettings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /messaging/settings
// @Summary Update the bot token
// @Description The token is verified against the provider before it is stored
// @Tags messaging
// @Accept json
// @Produce json
// @Param settings body service.UpdateMessagingSettingsRequest true "Bot token"
// @Success 200 {object} service.MessagingSettingsResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 422 {object} ErrorResponse "Token rejected by the provider"
// @Router /messaging/settings [put]
func (h *MessagingHandler) UpdateSettings(c *gin.Context) {
	var req service.UpdateMessagingSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := h.notificationService.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ListChannels handles GET /messaging/channels
// @Summary List chat channels
// @Tags messaging
// @Produce json
// @Success 200 {array} models.NotificationChannel
// @Router /messaging/channels [get]
func (h *MessagingHandler) ListChannels(c *gin.Context) {
	channels, err := h.notificationService.ListChannels()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

// CreateChannel handles POST /messaging/channels
// @Summary Create chat channel
// @Tags messaging
// @Accept json
// @Produce json
// @Param channel body service.ChannelRequest true "Channel"
// @Success 201 {object} models.NotificationChannel
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /messaging/channels [post]
func (h *MessagingHandler) CreateChannel(c *gin.Context) {
	var req service.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	channel, err := h.notificationService.CreateChannel(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, channel)
}

// UpdateChannel handles PUT /messaging/channels/:id
// @Summary Update chat channel
// @Tags messaging
// @Accept json
// @Produce json
// @Param id path string true "Channel ID"
// @Param channel body service.ChannelRequest true "Channel"
// @Success 200 {object} models.NotificationChannel
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Channel not found"
// @Router /messaging/channels/{id} [put]
func (h *MessagingHandler) UpdateChannel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	channel, err := h.notificationService.UpdateChannel(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

// DeleteChannel handles DELETE /messaging/channels/:id
// @Summary Delete chat channel
// @Tags messaging
// @Produce json
// @Param id path string true "Channel ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Channel not found"
// @Router /messaging/channels/{id} [delete]
func (h *MessagingHandler) DeleteChannel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.notificationService.DeleteChannel(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "channel deleted"})
}

// SendTest handles POST /messaging/test
// @Summary Send a test message
// @Description Sends to one channel, or to every active channel when none is given
// @Tags messaging
// @Accept json
// @Produce json
// @Param test body service.TestMessageRequest false "Target channel and text"
// @Success 200 {object} service.FanOutResult
// @Failure 404 {object} ErrorResponse "Channel not found"
// @Failure 422 {object} ErrorResponse "Messaging not configured"
// @Router /messaging/test [post]
func (h *MessagingHandler) SendTest(c *gin.Context) {
	var req service.TestMessageRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	result, err := h.notificationService.SendTest(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListDeliveryLogs handles GET /messaging/logs
// @Summary Recent delivery attempts
// @Tags messaging
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} models.DeliveryLog
// @Router /messaging/logs [get]
func (h *MessagingHandler) ListDeliveryLogs(c *gin.Context) {
	limit, ok := intQuery(c, "limit", defaultDeliveryLogLimit)
	if !ok {
		return
	}
	logs, err := h.notificationService.ListDeliveryLogs(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goldhollow/trophytable/internal/models"
	characterRepo "github.com/goldhollow/trophytable/internal/repositories/character"
	"github.com/goldhollow/trophytable/internal/rules"
	"github.com/goldhollow/trophytable/internal/services/table"
)

type createSessionRequest struct {
	Title       string `json:"title" binding:"required"`
	AsGuardian  bool   `json:"asGuardian"`
	CreatorName string `json:"creatorName"`
}

type joinRequest struct {
	PlayerName string `json:"playerName"`
	AsGuardian bool   `json:"asGuardian"`
}

type rollRequest struct {
	PlayerName string `json:"playerName" binding:"required"`
	RollType   string `json:"rollType" binding:"required"`
	LightCount int    `json:"lightCount"`
	DarkCount  int    `json:"darkCount"`
}

type pushRequest struct {
	PlayerName string `json:"playerName" binding:"required"`
}

type purgeRequest struct {
	Confirmed bool `json:"confirmed"`
}

type importRequest struct {
	Character *models.Character `json:"character" binding:"required"`
	Confirmed bool              `json:"confirmed"`
}

func (h *Handler) landing(c *gin.Context) {
	output, err := h.service.Landing(c.Request.Context(), &table.LandingInput{
		ClientToken: h.clientToken(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	recent := output.Recent
	if recent == nil {
		recent = []*models.RecentSession{}
	}
	c.JSON(http.StatusOK, gin.H{
		"tagline": output.Tagline,
		"recent":  recent,
	})
}

func (h *Handler) reference(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": rules.Reference()})
}

func (h *Handler) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.CreateSession(c.Request.Context(), &table.CreateSessionInput{
		Title:       req.Title,
		AsGuardian:  req.AsGuardian,
		CreatorName: req.CreatorName,
		ClientToken: h.clientToken(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": output.Session})
}

func (h *Handler) prefill(c *gin.Context) {
	output, err := h.service.Prefill(c.Request.Context(), &table.PrefillInput{
		SessionID:   c.Param("id"),
		ClientToken: h.clientToken(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":    output.Session,
		"characters": output.Characters,
		"identity":   output.Identity,
	})
}

func (h *Handler) join(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.Join(c.Request.Context(), &table.JoinInput{
		SessionID:   c.Param("id"),
		PlayerName:  req.PlayerName,
		AsGuardian:  req.AsGuardian,
		ClientToken: h.clientToken(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":     output.Session,
		"participant": output.Participant,
		"party":       output.Party,
	})
}

func (h *Handler) roll(c *gin.Context) {
	var req rollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rollType, ok := models.ParseRollType(req.RollType)
	if !ok {
		h.writeError(c, table.ErrInvalidRollType)
		return
	}

	output, err := h.service.Roll(c.Request.Context(), &table.RollInput{
		SessionID:  c.Param("id"),
		PlayerName: req.PlayerName,
		RollType:   rollType,
		LightCount: req.LightCount,
		DarkCount:  req.DarkCount,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"roll": output.Roll})
}

func (h *Handler) push(c *gin.Context) {
	var req pushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.Push(c.Request.Context(), &table.PushInput{
		SessionID:  c.Param("id"),
		PlayerName: req.PlayerName,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"roll": output.Roll})
}

func (h *Handler) history(c *gin.Context) {
	output, err := h.service.History(c.Request.Context(), &table.HistoryInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	rolls := output.Rolls
	if rolls == nil {
		rolls = []*models.Roll{}
	}
	c.JSON(http.StatusOK, gin.H{"rolls": rolls})
}

func (h *Handler) purgeHistory(c *gin.Context) {
	var req purgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.service.PurgeHistory(c.Request.Context(), &table.PurgeHistoryInput{
		SessionID: c.Param("id"),
		Confirmed: req.Confirmed,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) party(c *gin.Context) {
	output, err := h.service.GetParty(c.Request.Context(), &table.GetPartyInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"characters": output.Characters})
}

func (h *Handler) getCharacter(c *gin.Context) {
	output, err := h.service.GetCharacter(c.Request.Context(), &table.GetCharacterInput{
		SessionID:  c.Param("id"),
		PlayerName: c.Param("player"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"character": output.Character})
}

// exportCharacter serves the sheet as a downloadable JSON file so players
// can keep an offline copy between sessions.
func (h *Handler) exportCharacter(c *gin.Context) {
	output, err := h.service.GetCharacter(c.Request.Context(), &table.GetCharacterInput{
		SessionID:  c.Param("id"),
		PlayerName: c.Param("player"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Character.Name+".json"))
	c.JSON(http.StatusOK, output.Character)
}

func (h *Handler) updateCharacter(c *gin.Context) {
	var update characterRepo.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.UpdateCharacter(c.Request.Context(), &table.UpdateCharacterInput{
		SessionID:  c.Param("id"),
		PlayerName: c.Param("player"),
		Update:     &update,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"character": output.Character})
}

func (h *Handler) importCharacter(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.ImportCharacter(c.Request.Context(), &table.ImportCharacterInput{
		SessionID:  c.Param("id"),
		PlayerName: c.Param("player"),
		Character:  req.Character,
		Confirmed:  req.Confirmed,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"character": output.Character})
}

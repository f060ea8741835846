package handler

import (
	"net/http"

	"github.com/reisermn/virtual-island/internal/database"
	"github.com/reisermn/virtual-island/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

type GameResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{ID: game.ID, Name: game.Name}
}

type PlayerResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	TribeName string `json:"tribe_name"`
	Fire      bool   `json:"fire"`
	Jury      bool   `json:"jury"`
	Tribal    bool   `json:"tribal"`
	Votes     int    `json:"votes"`
	Round     int    `json:"round"`
}

func newPlayerResponse(user models.User) PlayerResponse {
	return PlayerResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		TribeName: user.TribeName,
		Fire:      user.Fire,
		Jury:      user.Jury,
		Tribal:    user.Tribal,
		Votes:     user.Votes,
		Round:     user.Round,
	}
}

// TribalCouncilInput names the tribe attending council.
type TribalCouncilInput struct {
	TribeName string `form:"tribe_name" binding:"required"`
}

// endregion

// region --- Season Handlers ---

// GetSeasons lists all games in creation order.
func GetSeasons(c *gin.Context) {
	var games []models.Game
	if err := database.DB.Order("id").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// GetSeason shows one game and its roster, ordered by tribe name descending
// with creation order as the tiebreak. An unknown game name yields an empty
// roster, not an error, so the view survives races with game removal.
func GetSeason(c *gin.Context) {
	name := c.Param("name")

	var game models.Game
	var selected *GameResponse
	if err := database.DB.Where("name = ?", name).First(&game).Error; err == nil {
		resp := newGameResponse(game)
		selected = &resp
	}

	var players []models.User
	err := database.DB.
		Joins("JOIN user_game ON user_game.user_id = users.id").
		Joins("JOIN games ON games.id = user_game.game_id").
		Where("games.name = ?", name).
		Order("users.tribe_name DESC, users.id ASC").
		Find(&players).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve players"})
		return
	}

	response := make([]PlayerResponse, 0, len(players))
	for _, player := range players {
		response = append(response, newPlayerResponse(player))
	}

	c.JSON(http.StatusOK, gin.H{
		"game":    selected,
		"players": response,
	})
}

// TribalCouncil marks the submitted tribe as attending tribal council:
// across the named game's roster, its members get the tribal flag, everyone
// else loses it, and the round counter advances. Admin only.
func TribalCouncil(c *gin.Context) {
	name := c.Param("name")

	var input TribalCouncilInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tribe_name is required"})
		return
	}

	var game models.Game
	if err := database.DB.Where("name = ?", name).First(&game).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		roster := tx.Table("user_game").Select("user_id").Where("game_id = ?", game.ID)

		if err := tx.Model(&models.User{}).
			Where("id IN (?)", roster).
			Where("tribe_name = ?", input.TribeName).
			Update("tribal", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id IN (?)", roster).
			Where("tribe_name <> ?", input.TribeName).
			Update("tribal", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id IN (?)", roster).
			Update("round", gorm.Expr("round + 1")).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record tribal council"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/seasons/"+name)
}

// endregion

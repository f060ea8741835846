package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/reisermn/virtual-island/internal/auth"
	"github.com/reisermn/virtual-island/internal/database"
	"github.com/reisermn/virtual-island/internal/models"
	"github.com/reisermn/virtual-island/internal/password"
	"github.com/reisermn/virtual-island/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// LoginInput defines the login form fields.
type LoginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

// RegisterInput defines the registration form fields. Username is not
// submitted; it is derived from the name parts.
type RegisterInput struct {
	FirstName string `form:"first_name" binding:"required,min=3,max=25"`
	LastName  string `form:"last_name" binding:"required,min=3,max=25"`
	Email     string `form:"email" binding:"required,email,min=6,max=40"`
	Password  string `form:"password" binding:"required,min=6,max=40"`
	Confirm   string `form:"confirm" binding:"required,eqfield=Password"`
	GameName  string `form:"game_name" binding:"required"`
	TribeName string `form:"tribe_name" binding:"required"`
	IsAdmin   bool   `form:"is_admin"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// region --- Public Handlers ---

// Home is the login entry point. It echoes the post-login destination so the
// login form can carry it through the POST.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Virtual Island. POST username and password to log in.",
		"next":    c.Query("next"),
	})
}

// About serves the static informational page.
func About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Virtual Island runs Survivor-style elimination seasons: register, join a season, outlast your tribe.",
	})
}

// RegisterForm describes the registration form for GET requests.
func RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"first_name", "last_name", "email", "password", "confirm", "game_name", "tribe_name", "is_admin"},
	})
}

// LoginUser authenticates the submitted credentials and binds the user to a
// new session. Every authentication failure yields the same generic error;
// nothing distinguishes an unknown username from a wrong password.
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := password.Verify(user.PasswordHash, input.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := session.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	maxAge := int(session.Sessions.TTL().Seconds())
	c.SetCookie(session.CookieName, token, maxAge, "/", "", false, true)

	next := input.Next
	if next == "" {
		next = c.Query("next")
	}
	c.Redirect(http.StatusSeeOther, loginRedirectTarget(next))
}

// Logout invalidates the current session and clears the cookie.
func Logout(c *gin.Context) {
	if token, exists := c.Get(auth.TokenKey); exists {
		if err := session.Sessions.Delete(c.Request.Context(), token.(string)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
			return
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// RegisterUser runs the registration workflow: validate the form, derive the
// username, find or create the named game, and link the new user into its
// roster. User creation and game membership commit in one transaction.
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := strings.ToLower(input.FirstName) + strings.ToLower(input.LastName)
	fullName := input.FirstName + input.LastName

	// Courtesy pre-checks; the unique constraints are the final guard.
	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already registered"})
		return
	}
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}

	digest, err := password.Hash(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.Where("name = ?", input.GameName).First(&game).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			game = models.Game{Name: input.GameName}
			if err := tx.Create(&game).Error; err != nil {
				return err
			}
		}

		user := models.User{
			Username:     username,
			Email:        input.Email,
			PasswordHash: &digest,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			FullName:     fullName,
			Active:       true, // always active at registration
			IsAdmin:      input.IsAdmin,
			TribeName:    input.TribeName,
			Fire:         true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		return tx.Model(&game).Association("Players").Append(&user)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	// Registered; send the user to the login entry point.
	c.Redirect(http.StatusSeeOther, "/")
}

// endregion

// loginRedirectTarget keeps redirects on-site: only local paths are honored.
func loginRedirectTarget(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/seasons"
}

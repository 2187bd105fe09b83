package api

import (
	"net/http"
	"os"

	"homenest/server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	store  Store
	logger *logrus.Logger
}

type RatingRequest struct {
	PropertyID  string  `json:"propertyId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	ReviewText  string  `json:"reviewText"`
	Email       string  `json:"email"`
}

func NewHandler(store Store, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		store:  store,
		logger: logger,
	}
}

// serverError logs the cause and returns the generic 500 body; detail never
// reaches the caller.
func (h *Handler) serverError(c *gin.Context, err error, msg string) {
	h.logger.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "🏡 HomeNest Server Running!")
}

func (h *Handler) GetAllProperties(c *gin.Context) {
	properties, err := h.store.GetAllProperties(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to get properties")
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid property id"})
		return
	}

	property, err := h.store.GetPropertyByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to get property")
		return
	}

	// No 404: a missing document is sent as a null body, matching what
	// existing clients expect
	if property == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if property.PropertyName == "" || property.UserEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	ack, err := h.store.InsertProperty(c.Request.Context(), property)
	if err != nil {
		h.serverError(c, err, "Failed to insert property")
		return
	}

	c.JSON(http.StatusOK, ack)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid property id"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// The identifier is immutable
	delete(fields, "_id")

	ack, err := h.store.UpdateProperty(c.Request.Context(), id, fields)
	if err != nil {
		h.serverError(c, err, "Failed to update property")
		return
	}

	c.JSON(http.StatusOK, ack)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid property id"})
		return
	}

	ack, err := h.store.DeleteProperty(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to delete property")
		return
	}

	c.JSON(http.StatusOK, ack)
}

func (h *Handler) GetMyProperties(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	properties, err := h.store.GetPropertiesByOwner(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, err, "Failed to get properties by owner")
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (h *Handler) CreateRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}

	if req.PropertyID == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data"})
		return
	}

	// Check-then-insert; not atomic, and no unique index backs it, so two
	// concurrent submissions for the same pair can both get through
	existing, err := h.store.FindRating(c.Request.Context(), req.PropertyID, req.Email)
	if err != nil {
		h.serverError(c, err, "Failed to check for existing rating")
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "You have already submitted a rating for this property.",
		})
		return
	}

	id, err := h.store.InsertRating(c.Request.Context(), models.Rating{
		PropertyID:   req.PropertyID,
		PropertyName: req.Name,
		Description:  req.Description,
		Image:        req.Image,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
		Email:        req.Email,
	})
	if err != nil {
		h.serverError(c, err, "Failed to insert rating")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

func (h *Handler) GetMyRatings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	ratings, err := h.store.GetRatingsByRater(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, err, "Failed to get ratings by rater")
		return
	}

	c.JSON(http.StatusOK, ratings)
}

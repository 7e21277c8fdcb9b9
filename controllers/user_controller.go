package controllers

import (
	"context"
	"net/http"
	"time"

	"cafesync/database"
	"cafesync/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	jwtSecret []byte
	logger    *zap.Logger
}

func NewUserController(jwtSecret []byte, logger *zap.Logger) *UserController {
	return &UserController{jwtSecret: jwtSecret, logger: logger}
}

// CreateSuperAdmin is a one-shot bootstrap endpoint for a fresh install.
func (uc *UserController) CreateSuperAdmin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email := "admin@gmail.com"

	var existing models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing); err == nil {
		fail(c, http.StatusBadRequest, "Super Admin already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("12345"), 10)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	now := time.Now()
	admin := models.User{
		ID:           primitive.NewObjectID(),
		Name:         "Super Admin",
		Email:        email,
		Role:         models.RoleAdmin,
		PasswordHash: string(hashed),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := database.UserCollection.InsertOne(ctx, admin); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Super Admin created successfully"})
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

func (uc *UserController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing); err == nil {
		fail(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleCustomer
	}

	now := time.Now()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         role,
		Phone:        input.Phone,
		PasswordHash: string(hashed),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := database.UserCollection.InsertOne(ctx, user); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully"})
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (uc *UserController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user); err != nil {
		fail(c, http.StatusBadRequest, "Invalid email or password")
		return
	}
	if user.PasswordHash == "" {
		fail(c, http.StatusBadRequest, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		fail(c, http.StatusBadRequest, "Invalid email or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   user.ID.Hex(),
		"role": user.Role,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   tokenString,
		"user": gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (uc *UserController) GetStaffs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.UserCollection.Find(ctx, bson.M{"role": bson.M{"$ne": models.RoleCustomer}})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	var staff []models.User
	if err := cursor.All(ctx, &staff); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": staff})
}

type staffInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

func (uc *UserController) AddStaff(c *gin.Context) {
	var input staffInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Email == "" || input.Password == "" {
		fail(c, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing); err == nil {
		fail(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleStaff
	}

	now := time.Now()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         role,
		Phone:        input.Phone,
		PasswordHash: string(hashed),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := database.UserCollection.InsertOne(ctx, user); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

func (uc *UserController) UpdateStaff(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	var input staffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Email != "" {
		update["email"] = input.Email
	}
	if input.Role != "" {
		update["role"] = input.Role
	}
	if input.Phone != "" {
		update["phone"] = input.Phone
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		update["passwordHash"] = string(hashed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	if err := database.UserCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&user); err != nil {
		fail(c, http.StatusNotFound, "Staff not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// ToggleStaffActive flips the active flag; inactive staff keep their account
// but cannot be scheduled.
func (uc *UserController) ToggleStaffActive(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		fail(c, http.StatusNotFound, "Staff not found")
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"active": !user.Active, "updatedAt": time.Now()}}
	if err := database.UserCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&user); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (uc *UserController) DeleteStaff(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.UserCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		fail(c, http.StatusNotFound, "Staff not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Staff deleted successfully"})
}

func (uc *UserController) GetUserProfile(c *gin.Context) {
	userID, _ := c.Get("userId")
	uid, ok := userID.(string)
	if !ok {
		fail(c, http.StatusUnauthorized, "Invalid token claims")
		return
	}
	objID, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

type profileInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (uc *UserController) UpdateUserProfile(c *gin.Context) {
	userID, _ := c.Get("userId")
	uid, ok := userID.(string)
	if !ok {
		fail(c, http.StatusUnauthorized, "Invalid token claims")
		return
	}
	objID, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Phone != "" {
		update["phone"] = input.Phone
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		update["passwordHash"] = string(hashed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	if err := database.UserCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&user); err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

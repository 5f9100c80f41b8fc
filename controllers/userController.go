package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	database "github.com/Mad-mazz/grace-burger/config"
	"github.com/Mad-mazz/grace-burger/helper"
	middleware "github.com/Mad-mazz/grace-burger/middlewares"
	"github.com/Mad-mazz/grace-burger/models"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "user")

func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	matchStage := bson.D{{Key: "$match", Value: bson.D{}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "email", Value: 1},
			{Key: "first_name", Value: 1},
			{Key: "last_name", Value: 1},
			{Key: "role", Value: 1},
			{Key: "user_id", Value: 1},
		}},
	}

	result, err := userCollection.Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error occurred while listing users")
		return
	}

	var allUsers []bson.M
	if err = result.All(ctx, &allUsers); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding user data")
		return
	}

	respondSuccess(w, http.StatusOK, "Users retrieved successfully", allUsers)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	userId := params["user_id"]

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"user_id": userId}).Decode(&user)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	responseUser := struct {
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
		UserID    string    `json:"user_id"`
	}{
		FirstName: *user.First_name,
		LastName:  *user.Last_name,
		Email:     *user.Email,
		Role:      user.Role,
		CreatedAt: user.Created_at,
		UpdatedAt: user.Updated_at,
		UserID:    user.User_id,
	}

	respondSuccess(w, http.StatusOK, "User retrieved successfully", responseUser)
}

func SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if validationErr := validate.Struct(user); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error checking email")
		return
	}
	if count > 0 {
		respondError(w, http.StatusConflict, "Email already exists")
		return
	}

	password := HashPassword(*user.Password)
	user.Password = &password

	// whatever role the body claims, public signup creates customers
	user.Role = models.SignupRole(user.Role)

	user.Created_at = time.Now()
	user.Updated_at = time.Now()
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()

	token, refreshToken, _ := helper.GenerateAllTokens(*user.Email, *user.First_name, *user.Last_name, user.User_id, user.Role)
	user.Token = &token
	user.Refresh_Token = &refreshToken

	_, insertErr := userCollection.InsertOne(ctx, user)
	if insertErr != nil {
		respondError(w, http.StatusInternalServerError, "User creation failed")
		return
	}

	user.Password = nil
	respondSuccess(w, http.StatusCreated, "User created successfully", user)
}

func Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var user models.User
	var foundUser models.User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := userCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&foundUser)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "User not found")
		return
	}

	passwordIsValid, msg := VerifyPassword(*user.Password, *foundUser.Password)
	if !passwordIsValid {
		respondError(w, http.StatusUnauthorized, msg)
		return
	}

	token, refreshToken, _ := helper.GenerateAllTokens(*foundUser.Email, *foundUser.First_name, *foundUser.Last_name, foundUser.User_id, foundUser.Role)
	helper.UpdateAllTokens(token, refreshToken, foundUser.User_id)

	// Create a response struct excluding the password
	responseUser := struct {
		Email        string `json:"email"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		Role         string `json:"role"`
		UserID       string `json:"user_id"`
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}{
		Email:        *foundUser.Email,
		FirstName:    *foundUser.First_name,
		LastName:     *foundUser.Last_name,
		Role:         foundUser.Role,
		UserID:       foundUser.User_id,
		Token:        token,
		RefreshToken: refreshToken,
	}

	respondSuccess(w, http.StatusOK, "Login successful", responseUser)
}

// Logout clears the stored tokens for the authenticated user.
func Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)
	if uid == "" {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	update := bson.M{"$set": bson.M{
		"token":         "",
		"refresh_token": "",
		"updated_at":    time.Now(),
	}}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"user_id": uid}, update); err != nil {
		respondError(w, http.StatusInternalServerError, "Logout failed")
		return
	}

	respondSuccess(w, http.StatusOK, "Logged out successfully", nil)
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	if err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword)); err != nil {
		return false, "Incorrect password"
	}
	return true, ""
}

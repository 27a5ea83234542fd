package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hqvu/furnistore/app/middlewares"
	"github.com/hqvu/furnistore/app/models"
	"github.com/hqvu/furnistore/app/repositories"
	"github.com/hqvu/furnistore/app/services"
	"github.com/hqvu/furnistore/app/utils/sessions"
	"github.com/hqvu/furnistore/app/utils/token"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	render    *render.Render
	userRepo  repositories.UserRepository
	cartSvc   *services.CartService
	validator *validator.Validate
	jwtSecret string
	secure    bool
}

func NewAuthHandler(rnd *render.Render, userRepo repositories.UserRepository, cartSvc *services.CartService, v *validator.Validate, jwtSecret string, secure bool) *AuthHandler {
	return &AuthHandler{
		render:    rnd,
		userRepo:  userRepo,
		cartSvc:   cartSvc,
		validator: v,
		jwtSecret: jwtSecret,
		secure:    secure,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required,min=8,max=20"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Phone string `json:"phone" validate:"required,min=8,max=20"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid request body"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Missing required fields"})
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Register: failed to check email %s: %v", req.Email, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
		return
	}
	if existing != nil {
		_ = h.render.JSON(w, http.StatusConflict, map[string]interface{}{"message": "Email already registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register: failed to hash password: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		Role:     models.RoleCustomer,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("Register: failed to create user: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
		return
	}

	h.finishAuth(w, r, user)
	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"userId":  user.ID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid request body"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Missing email or password"})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Login: failed to load user %s: %v", req.Email, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "Invalid credentials"})
		return
	}

	h.finishAuth(w, r, user)
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user": map[string]interface{}{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// finishAuth sets the auth cookie and folds any guest cart into the
// user's cart. The merge is best-effort: a failure is logged, never
// surfaced, so authentication always completes.
func (h *AuthHandler) finishAuth(w http.ResponseWriter, r *http.Request, user *models.User) {
	signed, err := token.Sign(h.jwtSecret, user.ID, user.Email, user.Role, user.Name)
	if err != nil {
		log.Printf("finishAuth: failed to sign token for %s: %v", user.ID, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     token.CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(7 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})

	sessionID := sessions.GetSessionID(r)
	if sessionID == "" {
		return
	}
	if err := h.cartSvc.MergeOnAuth(r.Context(), sessionID, user.ID); err != nil {
		log.Printf("finishAuth: cart merge failed for user %s: %v", user.ID, err)
		return
	}
	if err := sessions.ClearSessionID(w, r); err != nil {
		log.Printf("finishAuth: failed to clear guest session: %v", err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     token.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"message": "Logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())
	if userID == "" {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "Unauthorized"})
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		log.Printf("Me: failed to load user %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
		return
	}
	if user == nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "Unauthorized"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]interface{}{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())
	if userID == "" {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "Unauthorized"})
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "invalid request body"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Missing required fields"})
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		log.Printf("UpdateProfile: failed to load user %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
		return
	}

	user.Name = req.Name
	user.Phone = req.Phone
	if err := h.userRepo.Update(r.Context(), user); err != nil {
		log.Printf("UpdateProfile: failed to update user %s: %v", userID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"message": "Profile updated"})
}

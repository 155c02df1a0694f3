package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"studymate_backend/internal/config"
	"studymate_backend/internal/model"
	"studymate_backend/internal/repository"
	"studymate_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
	OAuth    *oauth2.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
		OAuth: &oauth2.Config{
			ClientID:     cfg.OAuth.GoogleClientID,
			ClientSecret: cfg.OAuth.GoogleClientSecret,
			RedirectURL:  cfg.OAuth.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}
	// OAuth-only accounts have no password to compare against.
	if user.Password == "" {
		return "", util.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	s.UserRepo.Update(user)

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// GenerateState returns a random value to bind the OAuth redirect to the
// browser session that initiated it.
func (s *AuthService) GenerateState() (string, error) {
	state, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return state.String(), nil
}

func (s *AuthService) LoginURL(state string) string {
	return s.OAuth.AuthCodeURL(state)
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// ExchangeCode completes the OAuth flow: it trades the authorization code for
// an access token, fetches the Google profile, upserts the matching user and
// signs a JWT for it.
func (s *AuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := s.OAuth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange authorization code: %w", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return "", err
	}

	user, err := s.upsertGoogleUser(info)
	if err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	resp, err := s.OAuth.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch user info: status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("incomplete user info from Google")
	}
	return &info, nil
}

// upsertGoogleUser matches by Google id first, then by email to link an
// existing password account, and creates a fresh user otherwise.
func (s *AuthService) upsertGoogleUser(info *googleUserInfo) (*model.User, error) {
	user, err := s.UserRepo.FindByGoogleID(info.ID)
	if err == nil {
		user.Name = info.Name
		user.Avatar = info.Picture
		user.LastLogin = time.Now()
		if err := s.UserRepo.Update(user); err != nil {
			return nil, err
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err = s.UserRepo.FindByEmail(info.Email)
	if err == nil {
		user.GoogleID = info.ID
		user.Avatar = info.Picture
		user.LastLogin = time.Now()
		if err := s.UserRepo.Update(user); err != nil {
			return nil, err
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &model.User{
		Name:      info.Name,
		Email:     info.Email,
		GoogleID:  info.ID,
		Avatar:    info.Picture,
		LastLogin: time.Now(),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

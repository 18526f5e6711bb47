package store

import (
	"context"
	"slices"
	"strings"

	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	msgUserFieldsRequired   = "All fields are required."
	msgUserUpdateRequired   = "Name, email, and role are required."
	msgEmailRegistered      = "Email is already registered."
	msgEmailExists          = "Email already exists."
	msgInvalidCredentials   = "Invalid email or password."
	msgCannotDeleteActive   = "You cannot delete the active user."
	msgRegistrationComplete = "Registration successful."
)

// Register регистрирует нового пользователя, сессию не открывает
func (s *Store) Register(ctx context.Context, in UserInput) (*models.User, Result) {
	return s.addUser(ctx, "Register", in, msgEmailRegistered, msgRegistrationComplete)
}

// CreateUser создаёт пользователя из панели администратора
func (s *Store) CreateUser(ctx context.Context, in UserInput) (*models.User, Result) {
	return s.addUser(ctx, "CreateUser", in, msgEmailExists, "User created.")
}

func (s *Store) addUser(ctx context.Context, method string, in UserInput, conflictMsg, okMsg string) (*models.User, Result) {
	in.normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  method,
		"email":   in.Email,
	})

	if err := s.validate.Struct(in); err != nil {
		log.WithError(err).Debug("User validation failed")
		return nil, fail(ErrValidation, msgUserFieldsRequired)
	}

	s.mu.Lock()
	if s.emailTaken(in.Email, "") {
		s.mu.Unlock()
		log.Info("Email already registered")
		return nil, fail(ErrConflict, conflictMsg)
	}

	user := models.User{
		ID:       s.newID(),
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}
	s.users = append(slices.Clone(s.users), user)
	s.persist(ctx, KeyUsers, s.users)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionUsers, models.ActionCreated, user.ID, actorID)
	log.WithField("user_id", user.ID).Info("User created successfully")
	return &user, succeed(okMsg)
}

// emailTaken проверяет занятость email без учёта регистра. Вызывается под s.mu.
func (s *Store) emailTaken(email, exceptID string) bool {
	return slices.ContainsFunc(s.users, func(u models.User) bool {
		return u.ID != exceptID && strings.ToLower(u.Email) == email
	})
}

// Login открывает сессию по email без учёта регистра и точному паролю
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, Result) {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  "Login",
		"email":   email,
	})

	s.mu.Lock()
	i := slices.IndexFunc(s.users, func(u models.User) bool {
		return strings.ToLower(u.Email) == email && u.Password == password
	})
	if i < 0 {
		s.mu.Unlock()
		log.Warn("Invalid credentials")
		return nil, fail(ErrAuth, msgInvalidCredentials)
	}

	user := s.users[i]
	session := user
	s.session = &session
	s.persist(ctx, KeyCurrentUser, s.session)
	s.mu.Unlock()

	s.notify(ctx, models.CollectionSession, models.ActionLogin, user.ID, user.ID)
	log.WithField("user_id", user.ID).Info("User logged in")
	return &user, succeed("Login successful.")
}

// Logout закрывает сессию безусловно и записывает null
func (s *Store) Logout(ctx context.Context) Result {
	s.mu.Lock()
	_, actorID := s.actor()
	s.session = nil
	s.persist(ctx, KeyCurrentUser, s.session)
	s.mu.Unlock()

	s.notify(ctx, models.CollectionSession, models.ActionLogout, actorID, actorID)
	s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  "Logout",
		"user_id": actorID,
	}).Info("Session closed")
	return succeed("Logged out.")
}

// UpdateUser обновляет пользователя; пустой пароль не перезаписывает текущий.
// Если обновлён пользователь сессии, сессия обновляется тоже.
func (s *Store) UpdateUser(ctx context.Context, id string, in UserUpdate) (*models.User, Result) {
	in.normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  "UpdateUser",
		"user_id": id,
	})

	if err := s.validate.Struct(in); err != nil {
		log.WithError(err).Debug("User update validation failed")
		return nil, fail(ErrValidation, msgUserUpdateRequired)
	}

	s.mu.Lock()
	if s.emailTaken(in.Email, id) {
		s.mu.Unlock()
		log.Info("Email belongs to another user")
		return nil, fail(ErrConflict, msgEmailExists)
	}

	var updated *models.User
	users := slices.Clone(s.users)
	for i := range users {
		if users[i].ID != id {
			continue
		}
		users[i].Name = in.Name
		users[i].Email = in.Email
		users[i].Role = in.Role
		if in.Password != "" {
			users[i].Password = in.Password
		}
		u := users[i]
		updated = &u
	}
	s.users = users
	s.persist(ctx, KeyUsers, s.users)

	if updated != nil && s.session != nil && s.session.ID == id {
		session := *updated
		s.session = &session
		s.persist(ctx, KeyCurrentUser, s.session)
	}
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionUsers, models.ActionUpdated, id, actorID)
	log.Info("User updated successfully")
	return updated, succeed("User updated.")
}

// DeleteUser удаляет пользователя; удалить пользователя сессии нельзя
func (s *Store) DeleteUser(ctx context.Context, id string) Result {
	log := s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  "DeleteUser",
		"user_id": id,
	})

	s.mu.Lock()
	if s.session != nil && s.session.ID == id {
		s.mu.Unlock()
		log.Warn("Attempted to delete the active user")
		return fail(ErrSelfDelete, msgCannotDeleteActive)
	}
	s.users = remove(s.users, id, func(u models.User) string { return u.ID })
	s.persist(ctx, KeyUsers, s.users)
	_, actorID := s.actor()
	s.mu.Unlock()

	s.notify(ctx, models.CollectionUsers, models.ActionDeleted, id, actorID)
	log.Info("User removed")
	return succeed("User removed.")
}

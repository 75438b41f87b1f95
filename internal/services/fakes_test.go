package services_test

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/payment"
	"resumebuilder_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the sentinel error behavior of the
// real implementations so services see the same failure shapes.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.FindByEmail(email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if ok, _ := r.ExistsByEmail(user.Email); ok {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) SetVerificationToken(userID, token string, expires time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.VerificationToken = &token
	u.VerificationExpires = &expires
	return nil
}

func (r *fakeUserRepo) VerifyUser(userID string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.EmailVerified = true
	u.VerificationToken = nil
	u.VerificationExpires = nil
	return nil
}

func (r *fakeUserRepo) UpdateSubscriptionPlan(userID, plan string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.SubscriptionPlan = plan
	return nil
}

func (r *fakeUserRepo) UpdateProfileImage(userID, imageURL string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.ProfileImageURL = imageURL
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

type fakeResumeRepo struct {
	resumes map[string]*models.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: make(map[string]*models.Resume)}
}

func (r *fakeResumeRepo) Create(resume *models.Resume) error {
	if resume.ID == "" {
		resume.ID = uuid.NewString()
	}
	resume.CreatedAt = time.Now()
	resume.UpdatedAt = time.Now()
	copied := *resume
	r.resumes[resume.ID] = &copied
	return nil
}

func (r *fakeResumeRepo) FindByUserID(userID string) ([]models.Resume, error) {
	var out []models.Resume
	for _, res := range r.resumes {
		if res.UserID == userID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeResumeRepo) FindByUserIDAndID(userID, resumeID string) (*models.Resume, error) {
	res, ok := r.resumes[resumeID]
	if !ok || res.UserID != userID {
		return nil, repositories.ErrResumeNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeResumeRepo) Update(resume *models.Resume) error {
	if _, ok := r.resumes[resume.ID]; !ok {
		return repositories.ErrResumeNotFound
	}
	resume.UpdatedAt = time.Now()
	copied := *resume
	r.resumes[resume.ID] = &copied
	return nil
}

func (r *fakeResumeRepo) Delete(resume *models.Resume) error {
	if _, ok := r.resumes[resume.ID]; !ok {
		return repositories.ErrResumeNotFound
	}
	delete(r.resumes, resume.ID)
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*models.Payment // keyed by order ID
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) Create(p *models.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	copied := *p
	r.payments[p.OrderID] = &copied
	return nil
}

func (r *fakePaymentRepo) FindByOrderID(orderID string) (*models.Payment, error) {
	if p, ok := r.payments[orderID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, repositories.ErrPaymentNotFound
}

func (r *fakePaymentRepo) FindByUserID(userID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Update(p *models.Payment) error {
	if _, ok := r.payments[p.OrderID]; !ok {
		return repositories.ErrPaymentNotFound
	}
	copied := *p
	r.payments[p.OrderID] = &copied
	return nil
}

// fakeEmailProvider records sent mail and can be told to fail.
type fakeEmailProvider struct {
	failNext      bool
	verifications []sentVerification
	attachments   []sentAttachment
}

type sentVerification struct {
	to    string
	name  string
	token string
}

type sentAttachment struct {
	to       string
	subject  string
	filename string
}

func (p *fakeEmailProvider) SendHTML(to, subject, html string) error {
	if p.failNext {
		p.failNext = false
		return errors.New("smtp unavailable")
	}
	return nil
}

func (p *fakeEmailProvider) SendVerification(to, name, token string) error {
	if p.failNext {
		p.failNext = false
		return errors.New("smtp unavailable")
	}
	p.verifications = append(p.verifications, sentVerification{to: to, name: name, token: token})
	return nil
}

func (p *fakeEmailProvider) SendWithAttachment(to, subject, body string, attachment []byte, filename string) error {
	if p.failNext {
		p.failNext = false
		return errors.New("smtp unavailable")
	}
	p.attachments = append(p.attachments, sentAttachment{to: to, subject: subject, filename: filename})
	return nil
}

// fakeGateway returns canned orders and accepts one magic signature.
type fakeGateway struct {
	nextOrderID string
	failCreate  bool
	validSig    string
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payment.Order, error) {
	if g.failCreate {
		return nil, errors.New("gateway down")
	}
	return &payment.Order{
		ID:       g.nextOrderID,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == g.validSig
}

// fakeStorage records saved paths in memory.
type fakeStorage struct {
	saved map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string]string)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return err
	}
	s.saved[path] = contentType
	return nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(s.saved, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.saved[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(path string) string {
	return "/uploads/" + path
}

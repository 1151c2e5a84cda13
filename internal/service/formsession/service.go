package formsession

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clarkyangjw/schedulease-web/internal/domain"
	"github.com/clarkyangjw/schedulease-web/internal/usecase/create_appointment"
	"github.com/clarkyangjw/schedulease-web/internal/usecase/query_available_providers"
	"github.com/clarkyangjw/schedulease-web/internal/usecase/update_appointment"
	"github.com/clarkyangjw/schedulease-web/pkg/timeunit"
)

// MsgAvailabilityFailed сообщение пользователю при недоступности
// запроса доступных мастеров
const MsgAvailabilityFailed = "Could not load available providers. Please try again."

const sweepInterval = time.Minute

// session одна открытая форма записи.
// Порядок взятия локов: сначала Service.mu, потом session.mu.
// Держа session.mu, брать Service.mu нельзя.
type session struct {
	mu   sync.Mutex
	form *form
}

// Service держит открытые формы записи и проводит их через
// цепочку зависимых полей до отправки
type Service struct {
	availability AvailabilityQuerier
	creator      AppointmentCreator
	updater      AppointmentUpdater
	loc          *time.Location
	ttl          time.Duration
	log          Logger
	metrics      MetricsRecorder

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService конструктор
func NewService(
	availability AvailabilityQuerier,
	creator AppointmentCreator,
	updater AppointmentUpdater,
	loc *time.Location,
	ttl time.Duration,
	log Logger,
	metrics MetricsRecorder,
) *Service {
	return &Service{
		availability: availability,
		creator:      creator,
		updater:      updater,
		loc:          loc,
		ttl:          ttl,
		log:          log,
		metrics:      metrics,
		sessions:     make(map[string]*session),
	}
}

// Open открывает новую форму. Когда seed задан, форма работает в режиме
// редактирования и заполняется из существующей записи, иначе создаётся
// пустая форма создания.
func (s *Service) Open(ctx context.Context, seed *domain.Appointment) (*Snapshot, error) {
	id := uuid.NewString()
	now := time.Now()

	var (
		f   *form
		err error
	)
	if seed == nil {
		f = newCreateForm(id, now)
	} else {
		f, err = newEditForm(id, *seed, s.loc, now)
		if err != nil {
			return nil, fmt.Errorf("%w: seed appointment: %v", ErrInternal, err)
		}
	}

	sess := &session{form: f}

	s.mu.Lock()
	s.sessions[id] = sess
	s.metrics.SetFormSessionsActive(float64(len(s.sessions)))
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// в режиме редактирования время и услуга уже заполнены,
	// список доступных мастеров нужен сразу
	if f.startTime != "" && f.serviceID != nil {
		s.refreshAvailability(ctx, sess)
	}

	s.log.Info("form session opened: id=%s mode=%s", id, f.mode)

	return f.snapshot(), nil
}

// Apply применяет изменение полей и возвращает новое состояние формы.
// Изменение времени или услуги запускает запрос доступных мастеров.
func (s *Service) Apply(ctx context.Context, sessionID string, patch Patch) (*Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	f := sess.form
	if f.closed {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	needQuery, err := s.applyPatch(f, patch)
	if err != nil {
		return nil, err
	}

	f.updatedAt = time.Now()

	if needQuery {
		s.refreshAvailability(ctx, sess)
	}

	return f.snapshot(), nil
}

// applyPatch изменяет поля формы по правилам цепочки
// клиент → время → услуга → мастер. Вызывается под локом сессии.
func (s *Service) applyPatch(f *form, patch Patch) (needQuery bool, err error) {
	if patch.ClientID != nil {
		if *patch.ClientID <= 0 {
			return false, newFieldError("clientId", MsgClientRequired)
		}
		clientID := *patch.ClientID
		f.clientID = &clientID
	}

	if patch.StartTime != nil {
		if !f.locks().TimeEnabled {
			return false, fmt.Errorf("%w: startTime", ErrFieldLocked)
		}
		if *patch.StartTime == "" {
			f.startTime = ""
		} else {
			if _, perr := timeunit.FromEditableString(*patch.StartTime, s.loc); perr != nil {
				return false, newFieldError("startTime", MsgStartTimeInvalid)
			}
			f.startTime = *patch.StartTime
		}
		// в режиме создания смена времени сбрасывает выбор мастера,
		// в режиме редактирования судьбу выбора решает ответ доступности
		if f.mode == ModeCreate {
			f.providerID = nil
		}
		needQuery = f.startTime != "" && f.serviceID != nil
	}

	if patch.ServiceID != nil {
		if !f.locks().ServiceEnabled {
			return false, fmt.Errorf("%w: serviceId", ErrFieldLocked)
		}
		if *patch.ServiceID <= 0 {
			return false, newFieldError("serviceId", MsgServiceRequired)
		}
		serviceID := *patch.ServiceID
		f.serviceID = &serviceID
		if f.mode == ModeCreate {
			f.providerID = nil
		}
		needQuery = f.startTime != ""
	}

	if patch.ProviderID != nil {
		if *patch.ProviderID == 0 {
			f.providerID = nil
		} else {
			if !f.locks().ProviderEnabled {
				return false, fmt.Errorf("%w: providerId", ErrFieldLocked)
			}
			if !f.providerListed(*patch.ProviderID) {
				return false, newFieldError("providerId", MsgProviderUnknown)
			}
			providerID := *patch.ProviderID
			f.providerID = &providerID
		}
	}

	if patch.Status != nil {
		if f.mode == ModeCreate {
			return false, newFieldError("status", MsgStatusCreateLocked)
		}
		status := domain.AppointmentStatus(*patch.Status)
		if !domain.IsValidStatus(status) {
			return false, newFieldError("status", MsgStatusUnknown)
		}
		f.status = status
	}

	if patch.Notes != nil {
		f.notes = patch.Notes
	}

	if patch.CancellationReason != nil {
		f.cancellationReason = patch.CancellationReason
	}

	return needQuery, nil
}

// refreshAvailability запрашивает доступных мастеров для текущей пары
// (время, услуга). Вызывается под локом сессии; на время сетевого вызова
// лок отпускается, поэтому применяется только ответ на самый свежий
// запрос — устаревший ответ отбрасывается.
func (s *Service) refreshAvailability(ctx context.Context, sess *session) {
	f := sess.form

	f.availabilitySeq++
	seq := f.availabilitySeq

	startSeconds, err := timeunit.FromEditableString(f.startTime, s.loc)
	if err != nil {
		f.available = nil
		f.availabilityMessage = MsgAvailabilityFailed
		return
	}

	req := &query_available_providers.Request{
		StartTime: startSeconds,
		ServiceID: *f.serviceID,
	}
	if f.mode == ModeEdit && f.providerID != nil {
		current := *f.providerID
		req.CurrentProviderID = &current
	}

	sess.mu.Unlock()
	resp, qerr := s.availability.Execute(ctx, req)
	sess.mu.Lock()

	if f.closed {
		s.log.Debug("availability response after close ignored: session=%s", f.id)
		return
	}
	if seq != f.availabilitySeq {
		s.metrics.StaleAvailabilityDropped()
		s.log.Debug("stale availability response dropped: session=%s seq=%d current=%d", f.id, seq, f.availabilitySeq)
		return
	}

	if qerr != nil {
		// отказ трактуется как пустой список, не как "все свободны"
		f.available = nil
		f.availabilityMessage = MsgAvailabilityFailed
		f.providerID = nil
		return
	}

	f.available = resp.Providers
	f.availabilityMessage = ""

	if f.providerID != nil && !f.providerListed(*f.providerID) {
		f.providerID = nil
	}
}

// Submit проверяет форму и отправляет её в scheduling core.
// Ошибки валидации возвращаются без единого сетевого вызова.
// Сессия закрывается только после успешной отправки, чтобы пользователь
// мог исправить форму после отказа.
func (s *Service) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()

	f := sess.form
	if f.closed {
		sess.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	if fieldErrors := f.validate(); fieldErrors != nil {
		sess.mu.Unlock()
		return nil, &ValidationError{Fields: fieldErrors}
	}

	startSeconds, err := timeunit.FromEditableString(f.startTime, s.loc)
	if err != nil {
		sess.mu.Unlock()
		return nil, newFieldError("startTime", MsgStartTimeInvalid)
	}

	result, err := s.submit(ctx, f, startSeconds)
	if err != nil {
		sess.mu.Unlock()
		return nil, err
	}

	f.closed = true
	sess.mu.Unlock()

	s.drop(sessionID)
	s.log.Info("form session submitted: id=%s mode=%s appointment=%d", sessionID, f.mode, result.Appointment.ID)

	return result, nil
}

func (s *Service) submit(ctx context.Context, f *form, startSeconds int64) (*SubmitResult, error) {
	if f.mode == ModeCreate {
		resp, err := s.creator.Execute(ctx, &create_appointment.Request{
			ClientID:   *f.clientID,
			ProviderID: *f.providerID,
			ServiceID:  *f.serviceID,
			StartTime:  startSeconds,
			Notes:      f.notes,
		})
		if err != nil {
			return nil, err
		}
		return &SubmitResult{Appointment: resp.Appointment}, nil
	}

	resp, err := s.updater.Execute(ctx, &update_appointment.Request{
		AppointmentID:      f.appointmentID,
		ClientID:           *f.clientID,
		ProviderID:         *f.providerID,
		ServiceID:          *f.serviceID,
		StartTime:          startSeconds,
		Status:             string(f.status),
		Notes:              f.notes,
		CancellationReason: f.cancellationReason,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitResult{Appointment: resp.Appointment, Replaced: resp.Replaced}, nil
}

// Cancel закрывает форму без побочных эффектов. Ответ доступности,
// пришедший после закрытия, к форме не применяется.
func (s *Service) Cancel(sessionID string) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	sess.form.closed = true
	sess.mu.Unlock()

	s.drop(sessionID)
	s.log.Info("form session cancelled: id=%s", sessionID)

	return nil
}

// StartSweeper запускает фоновую чистку простаивающих сессий
func (s *Service) StartSweeper(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.sweep(time.Now())
			}
		}
	}()
}

func (s *Service) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		expired := now.Sub(sess.form.updatedAt) > s.ttl
		if expired {
			sess.form.closed = true
		}
		sess.mu.Unlock()

		if expired {
			delete(s.sessions, id)
			swept++
		}
	}

	if swept > 0 {
		s.metrics.SetFormSessionsActive(float64(len(s.sessions)))
		s.log.Info("swept %d idle form sessions", swept)
	}
}

func (s *Service) lookup(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	return sess, nil
}

func (s *Service) drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	s.metrics.SetFormSessionsActive(float64(len(s.sessions)))
}

package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/models"
	"github.com/yeremiapane/cafeteria-app/utils"
)

// ReservationService menjaga aturan no-double-booking per meja
type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

type CreateReservationInput struct {
	TableID    uint
	CustomerID uint
	StartTime  time.Time
	EndTime    time.Time
	Status     string
}

// ReservationPatch berisi field opsional untuk update parsial.
// Field nil tidak pernah ikut ditulis ke database.
type ReservationPatch struct {
	TableID    *uint
	CustomerID *uint
	StartTime  *time.Time
	EndTime    *time.Time
	Status     *string
}

// ReservationRecord adalah baris reservasi plus data customer untuk tampilan
type ReservationRecord struct {
	models.Reservation
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

type ReservationPage struct {
	Page    int                 `json:"page"`
	Limit   int                 `json:"limit"`
	Total   int64               `json:"total"`
	Records []ReservationRecord `json:"records"`
}

type ReservationListFilter struct {
	Status    string
	TableID   uint
	StartTime *time.Time
	EndTime   *time.Time
}

// isTableAvailable mengecek apakah meja bebas pada interval [start, end).
// Dua interval bentrok jika s1 < e2 dan e1 > s2 (half-open).
// Catatan: semua reservasi untuk meja tsb dihitung, apapun statusnya --
// reservasi canceled masih memblokir slotnya.
func (s *ReservationService) isTableAvailable(tableID uint, start, end time.Time, excludeID uint) (bool, error) {
	query := s.db.Model(&models.Reservation{}).
		Where("table_id = ? AND start_time < ? AND end_time > ?", tableID, end, start)

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func validateInterval(start, end time.Time) error {
	if !start.Before(end) {
		return utils.BadRequestError("start_time must be before end_time")
	}
	return nil
}

func (s *ReservationService) CreateReservation(input CreateReservationInput) (uint, error) {
	if err := validateInterval(input.StartTime, input.EndTime); err != nil {
		return 0, err
	}

	available, err := s.isTableAvailable(input.TableID, input.StartTime, input.EndTime, 0)
	if err != nil {
		return 0, err
	}
	if !available {
		return 0, utils.ConflictError("table %d is already reserved for this time window", input.TableID)
	}

	status := input.Status
	if status == "" {
		status = models.ReservationStatusActive
	}

	reservation := models.Reservation{
		TableID:    input.TableID,
		CustomerID: input.CustomerID,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Status:     status,
	}

	if err := s.db.Create(&reservation).Error; err != nil {
		return 0, err
	}
	return reservation.ID, nil
}

func (s *ReservationService) UpdateReservation(id uint, patch ReservationPatch) error {
	var existing models.Reservation
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("reservation not found")
		}
		return err
	}

	// Validasi interval hanya jika kedua waktu dikirim
	if patch.StartTime != nil && patch.EndTime != nil {
		if err := validateInterval(*patch.StartTime, *patch.EndTime); err != nil {
			return err
		}
	}

	// Cek ulang ketersediaan jika meja dan kedua waktu dikirim,
	// dengan mengecualikan reservasi ini sendiri
	if patch.TableID != nil && patch.StartTime != nil && patch.EndTime != nil {
		available, err := s.isTableAvailable(*patch.TableID, *patch.StartTime, *patch.EndTime, id)
		if err != nil {
			return err
		}
		if !available {
			return utils.ConflictError("table %d is already reserved for this time window", *patch.TableID)
		}
	}

	// Bangun update set secara dinamis supaya field yang tidak dikirim
	// tidak menimpa nilai lama
	updates := map[string]interface{}{}
	if patch.TableID != nil {
		updates["table_id"] = *patch.TableID
	}
	if patch.CustomerID != nil {
		updates["customer_id"] = *patch.CustomerID
	}
	if patch.StartTime != nil {
		updates["start_time"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		updates["end_time"] = *patch.EndTime
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}

	if len(updates) == 0 {
		return nil
	}

	return s.db.Model(&models.Reservation{}).Where("id = ?", id).Updates(updates).Error
}

// CancelReservation mengubah status ke canceled hanya jika masih active.
// Id tidak ada dan sudah-canceled sama-sama menghasilkan not found.
func (s *ReservationService) CancelReservation(id uint) error {
	result := s.db.Model(&models.Reservation{}).
		Where("id = ? AND status = ?", id, models.ReservationStatusActive).
		Update("status", models.ReservationStatusCanceled)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Reservation not found or already canceled")
	}
	return nil
}

// CheckAvailability mengembalikan semua meja yang tidak punya reservasi
// bentrok pada [start, end)
func (s *ReservationService) CheckAvailability(start, end time.Time) ([]models.Table, error) {
	if err := validateInterval(start, end); err != nil {
		return nil, err
	}

	var tables []models.Table
	if err := s.db.Find(&tables).Error; err != nil {
		return nil, err
	}

	var reserved []models.Reservation
	if err := s.db.
		Where("start_time < ? AND end_time > ?", end, start).
		Find(&reserved).Error; err != nil {
		return nil, err
	}

	reservedTables := make(map[uint]struct{}, len(reserved))
	for _, r := range reserved {
		reservedTables[r.TableID] = struct{}{}
	}

	available := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if _, taken := reservedTables[t.ID]; !taken {
			available = append(available, t)
		}
	}
	return available, nil
}

func (s *ReservationService) GetReservationByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("reservation not found")
		}
		return nil, err
	}
	return &reservation, nil
}

// GetAllReservations mengembalikan halaman reservasi terurut start_time asc,
// di-join dengan nama dan email customer.
//
// Filter waktu: jika kedua batas dikirim, yang lolos adalah reservasi yang
// intervalnya berada DI DALAM batas query (containment), bukan yang overlap.
func (s *ReservationService) GetAllReservations(page, limit int, filter ReservationListFilter) (*ReservationPage, error) {
	query := s.db.Model(&models.Reservation{}).
		Select("reservations.*, customers.name AS customer_name, customers.email AS customer_email").
		Joins("JOIN customers ON customers.id = reservations.customer_id")

	if filter.Status != "" {
		query = query.Where("reservations.status = ?", filter.Status)
	}
	if filter.TableID != 0 {
		query = query.Where("reservations.table_id = ?", filter.TableID)
	}

	switch {
	case filter.StartTime != nil && filter.EndTime != nil:
		query = query.Where("reservations.start_time >= ? AND reservations.end_time <= ?", *filter.StartTime, *filter.EndTime)
	case filter.StartTime != nil:
		query = query.Where("reservations.end_time >= ?", *filter.StartTime)
	case filter.EndTime != nil:
		query = query.Where("reservations.start_time <= ?", *filter.EndTime)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var records []ReservationRecord
	if err := query.
		Order("reservations.start_time asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&records).Error; err != nil {
		return nil, err
	}

	if records == nil {
		records = []ReservationRecord{}
	}

	return &ReservationPage{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Records: records,
	}, nil
}

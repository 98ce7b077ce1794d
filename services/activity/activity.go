package activity

import (
	"encoding/json"
	"fmt"

	"mealtracker-go-api/models"
	"mealtracker-go-api/services/rabbitmq"
	"mealtracker-go-api/services/trackLog"

	"github.com/jinzhu/gorm"
)

// ActivityService writes one activity_log row per successful mutation and,
// when a rabbitmq connection is attached, fans the event out to the exchange.
// Recording never fails the caller's request.
type ActivityService struct {
	DB        *gorm.DB
	Publisher *rabbitmq.Connection
}

func NewActivityService(db *gorm.DB, publisher *rabbitmq.Connection) *ActivityService {
	return &ActivityService{DB: db, Publisher: publisher}
}

type event struct {
	LogName     string      `json:"log_name"`
	SubjectType string      `json:"subject_type"`
	SubjectID   int64       `json:"subject_id"`
	Properties  interface{} `json:"properties"`
}

func (a *ActivityService) Record(logName, subjectType string, subjectID int64, properties interface{}) {
	propertiesJSON, _ := json.Marshal(properties)

	entity := models.ActivityLog{
		LogName:     logName,
		Description: "mealtracker api log",
		Properties:  string(propertiesJSON),
		SubjectID:   subjectID,
		SubjectType: subjectType,
	}
	if err := a.DB.Create(&entity).Error; err != nil {
		trackLog.Error(fmt.Sprintf("[activity] insert failed: %s", err.Error()), true)
	}

	if a.Publisher == nil {
		return
	}
	body, _ := json.Marshal(event{
		LogName:     logName,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Properties:  properties,
	})
	if err := a.Publisher.Publish(body); err != nil {
		trackLog.Error(fmt.Sprintf("[activity] publish failed: %s", err.Error()), true)
	}
}

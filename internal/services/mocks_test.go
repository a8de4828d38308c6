package services_test

import (
	"questify/internal/models"
	"questify/pkg/rabbitmq"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUserName(userName string) (*models.User, error) {
	args := m.Called(userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockQuestRepository is a mock implementation of repositories.QuestRepository.
type MockQuestRepository struct {
	mock.Mock
}

func (m *MockQuestRepository) ListByUser(userID uint) ([]models.QuestSummary, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuestSummary), args.Error(1)
}

func (m *MockQuestRepository) GetByID(userID, questID uint) (*models.QuestSummary, error) {
	args := m.Called(userID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuestSummary), args.Error(1)
}

func (m *MockQuestRepository) Create(quest *models.Quest) error {
	args := m.Called(quest)
	return args.Error(0)
}

func (m *MockQuestRepository) Update(questID uint, fields map[string]interface{}) error {
	args := m.Called(questID, fields)
	return args.Error(0)
}

func (m *MockQuestRepository) Delete(questID uint) error {
	args := m.Called(questID)
	return args.Error(0)
}

// MockTaskRepository is a mock implementation of repositories.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) ListByQuest(questID uint) ([]models.Task, error) {
	args := m.Called(questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByID(taskID uint) (*models.Task, error) {
	args := m.Called(taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(task *models.Task) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(taskID uint, fields map[string]interface{}) error {
	args := m.Called(taskID, fields)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(taskID uint) error {
	args := m.Called(taskID)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishEvent(event rabbitmq.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

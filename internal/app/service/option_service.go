package service

import (
	"errors"

	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/internal/app/repository"
	"github.com/vitrina/vitrina-backend/pkg/logger"
	"github.com/vitrina/vitrina-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrOptionNotFound       = errors.New("product option not found")
	ErrOptionValueNotFound  = errors.New("option value not found")
	ErrDuplicateOptionName  = errors.New("option name already exists for this product")
	ErrDuplicateOptionValue = errors.New("value already exists for this option")
)

type CreateOptionInput struct {
	Name      string
	Type      model.OptionType
	SortOrder int
	Metadata  string
}

type UpdateOptionInput struct {
	Name      *string
	Type      *model.OptionType
	SortOrder *int
	Metadata  *string
}

type CreateOptionValueInput struct {
	Value       string
	DisplayName string
	Metadata    string
}

type UpdateOptionValueInput struct {
	Value       *string
	DisplayName *string
	SortOrder   *int
	Metadata    *string
}

type OptionService interface {
	ListOptions(productID uint) ([]model.ProductOption, error)
	CreateOption(productID uint, input CreateOptionInput) (*model.ProductOption, error)
	UpdateOption(optionID uint, input UpdateOptionInput) (*model.ProductOption, error)
	DeleteOption(optionID uint) error
	AddOptionValue(optionID uint, input CreateOptionValueInput) (*model.ProductOptionValue, error)
	UpdateOptionValue(valueID uint, input UpdateOptionValueInput) (*model.ProductOptionValue, error)
	DeleteOptionValue(valueID uint) error
}

type optionService struct {
	optionRepo  repository.OptionRepository
	productRepo repository.ProductRepository
}

func NewOptionService(optionRepo repository.OptionRepository, productRepo repository.ProductRepository) OptionService {
	return &optionService{
		optionRepo:  optionRepo,
		productRepo: productRepo,
	}
}

func (s *optionService) ListOptions(productID uint) ([]model.ProductOption, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.optionRepo.FindByProductID(productID)
}

func (s *optionService) CreateOption(productID uint, input CreateOptionInput) (*model.ProductOption, error) {
	logger.Debug("Creating option", map[string]interface{}{
		"product_id": productID,
		"name":       input.Name,
	})

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found for option creation", map[string]interface{}{
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing, err := s.optionRepo.FindByProductAndName(productID, input.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.Warn("Duplicate option name", map[string]interface{}{
			"product_id": productID,
			"name":       input.Name,
		})
		return nil, ErrDuplicateOptionName
	}

	optionType := input.Type
	if optionType == "" {
		optionType = model.OptionTypeText
	}
	metadata := input.Metadata
	if metadata == "" {
		metadata = "{}"
	}

	option := &model.ProductOption{
		ProductID: productID,
		Name:      input.Name,
		Slug:      util.Slugify(input.Name),
		Type:      optionType,
		SortOrder: input.SortOrder,
		Metadata:  metadata,
	}
	if err := s.optionRepo.Create(option); err != nil {
		return nil, err
	}

	logger.Info("Option created", map[string]interface{}{
		"option_id":  option.ID,
		"product_id": productID,
		"slug":       option.Slug,
	})
	return option, nil
}

func (s *optionService) UpdateOption(optionID uint, input UpdateOptionInput) (*model.ProductOption, error) {
	option, err := s.optionRepo.FindByID(optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != option.Name {
		existing, err := s.optionRepo.FindByProductAndName(option.ProductID, *input.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateOptionName
		}
		option.Name = *input.Name
		option.Slug = util.Slugify(*input.Name)
	}
	if input.Type != nil {
		option.Type = *input.Type
	}
	if input.SortOrder != nil {
		option.SortOrder = *input.SortOrder
	}
	if input.Metadata != nil {
		option.Metadata = *input.Metadata
	}

	if err := s.optionRepo.Update(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *optionService) DeleteOption(optionID uint) error {
	if _, err := s.optionRepo.FindByID(optionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOptionNotFound
		}
		return err
	}

	if err := s.optionRepo.Delete(optionID); err != nil {
		return err
	}

	logger.Info("Option deleted", map[string]interface{}{
		"option_id": optionID,
	})
	return nil
}

func (s *optionService) AddOptionValue(optionID uint, input CreateOptionValueInput) (*model.ProductOptionValue, error) {
	logger.Debug("Adding option value", map[string]interface{}{
		"option_id": optionID,
		"value":     input.Value,
	})

	if _, err := s.optionRepo.FindByID(optionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	existing, err := s.optionRepo.FindValueByOptionAndValue(optionID, input.Value)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.Warn("Duplicate option value", map[string]interface{}{
			"option_id": optionID,
			"value":     input.Value,
		})
		return nil, ErrDuplicateOptionValue
	}

	sortOrder, err := s.optionRepo.NextValueSortOrder(optionID)
	if err != nil {
		return nil, err
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = input.Value
	}
	metadata := input.Metadata
	if metadata == "" {
		metadata = "{}"
	}

	value := &model.ProductOptionValue{
		OptionID:    optionID,
		Value:       input.Value,
		DisplayName: displayName,
		SortOrder:   sortOrder,
		Metadata:    metadata,
	}
	if err := s.optionRepo.CreateValue(value); err != nil {
		return nil, err
	}

	logger.Info("Option value added", map[string]interface{}{
		"value_id":   value.ID,
		"option_id":  optionID,
		"sort_order": sortOrder,
	})
	return value, nil
}

func (s *optionService) UpdateOptionValue(valueID uint, input UpdateOptionValueInput) (*model.ProductOptionValue, error) {
	value, err := s.optionRepo.FindValueByID(valueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptionValueNotFound
		}
		return nil, err
	}

	if input.Value != nil && *input.Value != value.Value {
		existing, err := s.optionRepo.FindValueByOptionAndValue(value.OptionID, *input.Value)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateOptionValue
		}
		value.Value = *input.Value
	}
	if input.DisplayName != nil {
		value.DisplayName = *input.DisplayName
	}
	if input.SortOrder != nil {
		value.SortOrder = *input.SortOrder
	}
	if input.Metadata != nil {
		value.Metadata = *input.Metadata
	}

	if err := s.optionRepo.UpdateValue(value); err != nil {
		return nil, err
	}
	return value, nil
}

func (s *optionService) DeleteOptionValue(valueID uint) error {
	if _, err := s.optionRepo.FindValueByID(valueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOptionValueNotFound
		}
		return err
	}
	return s.optionRepo.DeleteValue(valueID)
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	FindByRegistration(ctx context.Context, registrationNumber string) (*models.Student, error)
	List(ctx context.Context, limit int64) ([]models.Student, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ReplaceMarks(ctx context.Context, id primitive.ObjectID, marks []models.SemesterMark) error
	UpdateCodingProfiles(ctx context.Context, id primitive.ObjectID, profiles models.CodingProfiles) error
	AttachSoftSkills(ctx context.Context, id primitive.ObjectID, result *models.SoftSkillsAssessment) error
	AttachResumeAnalysis(ctx context.Context, id primitive.ObjectID, result *models.ResumeAnalysis) error
	AttachMarksAnalysis(ctx context.Context, id primitive.ObjectID, result *models.MarksAnalysis) error
	AttachProfileAnalysis(ctx context.Context, id primitive.ObjectID, result *models.ProfileAnalysis) error
}

type studentRepository struct {
	collection *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) StudentRepository {
	return &studentRepository{
		collection: db.Collection(models.Student{}.CollectionName()),
	}
}

// Create implements StudentRepository.
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, student); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("registration number %s already exists: %w", student.RegistrationNumber, err)
		}
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// FindByID implements StudentRepository.
func (r *studentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return &student, nil
}

// FindByRegistration implements StudentRepository.
func (r *studentRepository) FindByRegistration(ctx context.Context, registrationNumber string) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"registration_number": registrationNumber}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return &student, nil
}

// List implements StudentRepository.
func (r *studentRepository) List(ctx context.Context, limit int64) ([]models.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return students, nil
}

// Delete implements StudentRepository.
func (r *studentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// ReplaceMarks implements StudentRepository.
func (r *studentRepository) ReplaceMarks(ctx context.Context, id primitive.ObjectID, marks []models.SemesterMark) error {
	return r.setFields(ctx, id, bson.M{"marks": marks})
}

// UpdateCodingProfiles implements StudentRepository.
func (r *studentRepository) UpdateCodingProfiles(ctx context.Context, id primitive.ObjectID, profiles models.CodingProfiles) error {
	return r.setFields(ctx, id, bson.M{"coding_profiles": profiles})
}

// AttachSoftSkills implements StudentRepository.
func (r *studentRepository) AttachSoftSkills(ctx context.Context, id primitive.ObjectID, result *models.SoftSkillsAssessment) error {
	return r.setFields(ctx, id, bson.M{"soft_skills": result})
}

// AttachResumeAnalysis implements StudentRepository.
func (r *studentRepository) AttachResumeAnalysis(ctx context.Context, id primitive.ObjectID, result *models.ResumeAnalysis) error {
	return r.setFields(ctx, id, bson.M{"resume_analysis": result})
}

// AttachMarksAnalysis implements StudentRepository.
func (r *studentRepository) AttachMarksAnalysis(ctx context.Context, id primitive.ObjectID, result *models.MarksAnalysis) error {
	return r.setFields(ctx, id, bson.M{"marks_analysis": result})
}

// AttachProfileAnalysis implements StudentRepository.
func (r *studentRepository) AttachProfileAnalysis(ctx context.Context, id primitive.ObjectID, result *models.ProfileAnalysis) error {
	return r.setFields(ctx, id, bson.M{"profile_analysis": result})
}

func (r *studentRepository) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()

	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrStudentNotFound
	}
	return nil
}

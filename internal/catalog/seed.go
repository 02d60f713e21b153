package catalog

import (
	"time"

	"uniadmin-backend/internal/model"
)

var (
	seedCreatedAt  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedEnrolledAt = time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
)

// SeedRepository returns the built-in catalog.
func SeedRepository() Repository {
	repo, err := NewMemoryRepository(seedUniversities(), seedCourses(), seedStudents())
	if err != nil {
		panic("catalog: invalid built-in seed: " + err.Error())
	}
	return repo
}

func seedUniversities() []model.University {
	return []model.University{
		{
			ID: 1, Name: "Universidade de Oxford", Country: "Reino Unido", City: "Oxford",
			Website: "https://www.ox.ac.uk", EstablishedYear: 1096,
			Description: "Uma das universidades mais antigas e prestigiosas do mundo, localizada em Oxford, Inglaterra.",
			CreatedAt:   seedCreatedAt,
		},
		{
			ID: 2, Name: "Sorbonne Université", Country: "França", City: "Paris",
			Website: "https://www.sorbonne-universite.fr", EstablishedYear: 1150,
			Description: "Universidade francesa de renome mundial, localizada no coração de Paris.",
			CreatedAt:   seedCreatedAt,
		},
		{
			ID: 3, Name: "Universität Heidelberg", Country: "Alemanha", City: "Heidelberg",
			Website: "https://www.uni-heidelberg.de", EstablishedYear: 1386,
			Description: "A universidade mais antiga da Alemanha, conhecida por sua excelência em pesquisa.",
			CreatedAt:   seedCreatedAt,
		},
		{
			ID: 4, Name: "Università Bocconi", Country: "Itália", City: "Milão",
			Website: "https://www.unibocconi.eu", EstablishedYear: 1902,
			Description: "Universidade italiana líder em economia, gestão e direito.",
			CreatedAt:   seedCreatedAt,
		},
		{
			ID: 5, Name: "Universidad Complutense Madrid", Country: "Espanha", City: "Madrid",
			Website: "https://www.ucm.es", EstablishedYear: 1499,
			Description: "Uma das universidades mais antigas da Espanha, localizada na capital.",
			CreatedAt:   seedCreatedAt,
		},
	}
}

func seedCourses() []model.Course {
	return []model.Course{
		{
			ID: 1, Name: "Mestrado em Ciência da Computação", Code: "CS-MSC-001",
			DurationMonths: 24, Language: "Inglês", TuitionFee: 15000,
			Description:  "Programa avançado em ciência da computação com foco em IA e machine learning.",
			UniversityID: 1, CreatedAt: seedCreatedAt,
		},
		{
			ID: 2, Name: "Bacharelado em Filosofia", Code: "PHIL-BA-001",
			DurationMonths: 36, Language: "Inglês", TuitionFee: 12000,
			Description:  "Curso de graduação em filosofia com tradição centenária.",
			UniversityID: 1, CreatedAt: seedCreatedAt,
		},
		{
			ID: 3, Name: "Mestrado em Literatura Francesa", Code: "LIT-MSC-001",
			DurationMonths: 24, Language: "Francês", TuitionFee: 8000,
			Description:  "Programa de mestrado focado na literatura francesa clássica e contemporânea.",
			UniversityID: 2, CreatedAt: seedCreatedAt,
		},
		{
			ID: 4, Name: "Doutorado em Física", Code: "PHYS-PHD-001",
			DurationMonths: 48, Language: "Alemão", TuitionFee: 0,
			Description:  "Programa de doutorado em física teórica e experimental.",
			UniversityID: 3, CreatedAt: seedCreatedAt,
		},
		{
			ID: 5, Name: "MBA em Gestão Internacional", Code: "MBA-INT-001",
			DurationMonths: 18, Language: "Inglês", TuitionFee: 45000,
			Description:  "MBA focado em gestão internacional e estratégia empresarial.",
			UniversityID: 4, CreatedAt: seedCreatedAt,
		},
		{
			ID: 6, Name: "Bacharelado em História", Code: "HIST-BA-001",
			DurationMonths: 48, Language: "Espanhol", TuitionFee: 3000,
			Description:  "Curso de graduação em história com foco na história ibérica.",
			UniversityID: 5, CreatedAt: seedCreatedAt,
		},
	}
}

func seedStudents() []model.Student {
	return []model.Student{
		{ID: 1, FirstName: "Ana", LastName: "Silva", Email: "ana.silva@email.com", Nationality: "Portuguesa",
			BirthDate: model.NewDate(1998, time.May, 15), EnrollmentDate: seedEnrolledAt, CourseID: 1},
		{ID: 2, FirstName: "Marco", LastName: "Rossi", Email: "marco.rossi@email.com", Nationality: "Italiana",
			BirthDate: model.NewDate(1997, time.August, 22), EnrollmentDate: seedEnrolledAt, CourseID: 1},
		{ID: 3, FirstName: "Sophie", LastName: "Dubois", Email: "sophie.dubois@email.com", Nationality: "Francesa",
			BirthDate: model.NewDate(1999, time.March, 10), EnrollmentDate: seedEnrolledAt, CourseID: 3},
		{ID: 4, FirstName: "Hans", LastName: "Mueller", Email: "hans.mueller@email.com", Nationality: "Alemã",
			BirthDate: model.NewDate(1995, time.December, 5), EnrollmentDate: seedEnrolledAt, CourseID: 4},
		{ID: 5, FirstName: "Elena", LastName: "García", Email: "elena.garcia@email.com", Nationality: "Espanhola",
			BirthDate: model.NewDate(2000, time.July, 18), EnrollmentDate: seedEnrolledAt, CourseID: 6},
		{ID: 6, FirstName: "James", LastName: "Smith", Email: "james.smith@email.com", Nationality: "Britânica",
			BirthDate: model.NewDate(1996, time.November, 30), EnrollmentDate: seedEnrolledAt, CourseID: 2},
		{ID: 7, FirstName: "Giulia", LastName: "Bianchi", Email: "giulia.bianchi@email.com", Nationality: "Italiana",
			BirthDate: model.NewDate(1994, time.April, 25), EnrollmentDate: seedEnrolledAt, CourseID: 5},
	}
}

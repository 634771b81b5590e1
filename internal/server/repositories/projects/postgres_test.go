package projects

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rdutra/portfolio-api/internal/common"
	"github.com/rdutra/portfolio-api/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var projectColumns = []string{"id", "img", "title", "descript", "descript_ptbr", "category", "tecnologies", "live_url", "url", "download", "laptop_img", "mobile_img"}

func sampleFields() *models.NewProject {
	return &models.NewProject{
		Img:          "img.png",
		Title:        "Title",
		Descript:     "desc",
		DescriptPtbr: "desc-pt",
		Category:     "web",
		Tecnologies:  "go,postgres",
		LiveURL:      "https://live",
		URL:          "https://repo",
		Download:     "https://dl",
		LaptopImg:    "laptop.png",
		MobileImg:    "mobile.png",
	}
}

func TestCreate_ReturnsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+projects\s*\(img,.*mobile_img\)\s*VALUES\s*\(\$1,.*\$11\)\s*RETURNING\s+id\s*$`

	f := sampleFields()
	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(7))
	mock.ExpectQuery(q).
		WithArgs(f.Img, f.Title, f.Descript, f.DescriptPtbr, f.Category,
			f.Tecnologies, f.LiveURL, f.URL, f.Download, f.LaptopImg, f.MobileImg).
		WillReturnRows(rows)

	id, err := repo.Create(context.Background(), f)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 7 {
		t.Fatalf("unexpected id: %d", id)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+projects`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), sampleFields())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*mobile_img\s+FROM\s+projects\s+WHERE\s+id\s*=\s*\$1\s*$`

	f := sampleFields()
	rows := sqlmock.NewRows(projectColumns).
		AddRow(int64(7), f.Img, f.Title, f.Descript, f.DescriptPtbr, f.Category,
			f.Tecnologies, f.LiveURL, f.URL, f.Download, f.LaptopImg, f.MobileImg)
	mock.ExpectQuery(q).WithArgs(int64(7)).WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != 7 || got.Title != f.Title || got.MobileImg != f.MobileImg {
		t.Fatalf("unexpected project: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+projects\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs(int64(999)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestList_StableOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+projects\s+ORDER\s+BY\s+id\s*$`

	f := sampleFields()
	rows := sqlmock.NewRows(projectColumns).
		AddRow(int64(1), f.Img, f.Title, f.Descript, f.DescriptPtbr, f.Category,
			f.Tecnologies, f.LiveURL, f.URL, f.Download, f.LaptopImg, f.MobileImg).
		AddRow(int64(2), f.Img, "Second", f.Descript, f.DescriptPtbr, f.Category,
			f.Tecnologies, f.LiveURL, f.URL, f.Download, f.LaptopImg, f.MobileImg)
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 || got[1].Title != "Second" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+projects\s+ORDER\s+BY\s+id\s*$`

	mock.ExpectQuery(q).WillReturnRows(sqlmock.NewRows(projectColumns))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestUpdate_Affected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+projects\s+SET\s+img\s*=\s*\$1,.*WHERE\s+id\s*=\s*\$12\s*$`

	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), 7, sampleFields()); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_MissingID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+projects\s+SET\s+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 999, sampleFields())
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound for zero affected rows, got %v", err)
	}
}

func TestDelete_Affected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+projects\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_MissingID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+projects\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).WithArgs(int64(999)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 999)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound for zero affected rows, got %v", err)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+projects\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).WithArgs(int64(7)).WillReturnError(errors.New("db err"))

	err := repo.Delete(context.Background(), 7)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

package database_test

import (
	"io/fs"
	"regexp"
	"slices"
	"strings"
	"testing"

	"health-automation-backend/internal/domain/entity"
	"health-automation-backend/internal/testutil"
	"health-automation-backend/migrations"

	"gorm.io/gorm"
)

var (
	createTablePattern = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	referencesPattern  = regexp.MustCompile(`REFERENCES (\w+) \((\w+)\)(?: ON DELETE (SET NULL|CASCADE|RESTRICT|NO ACTION))?`)
	uniquePattern      = regexp.MustCompile(`\bUNIQUE\b`)
)

// sqlSchema reads the foreign keys and unique columns declared by the
// initial SQL migration, rendered the same way as sqliteSchema.
func sqlSchema(t *testing.T) (tables, foreignKeys, uniques []string) {
	t.Helper()

	raw, err := fs.ReadFile(migrations.FS, "000001_init_schema.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	for _, table := range createTablePattern.FindAllStringSubmatch(string(raw), -1) {
		name := table[1]
		tables = append(tables, name)
		for _, line := range strings.Split(table[2], "\n") {
			line = strings.TrimSuffix(strings.TrimSpace(line), ",")
			if line == "" {
				continue
			}
			column := strings.Fields(line)[0]
			if ref := referencesPattern.FindStringSubmatch(line); ref != nil {
				onDelete := ref[3]
				if onDelete == "" {
					onDelete = "NO ACTION"
				}
				foreignKeys = append(foreignKeys, foreignKey(name, column, ref[1], ref[2], onDelete))
			}
			if uniquePattern.MatchString(line) {
				uniques = append(uniques, name+"."+column)
			}
		}
	}

	slices.Sort(foreignKeys)
	slices.Sort(uniques)
	return tables, foreignKeys, uniques
}

type foreignKeyRow struct {
	RefTable string
	FromCol  string
	ToCol    string
	OnDelete string
}

type uniqueRow struct {
	ColumnName string
}

func sqliteSchema(t *testing.T, db *gorm.DB, tables []string) (foreignKeys, uniques []string) {
	t.Helper()

	for _, table := range tables {
		var fks []foreignKeyRow
		err := db.Raw(`SELECT "table" AS ref_table, "from" AS from_col, "to" AS to_col, on_delete
			FROM pragma_foreign_key_list(?)`, table).Scan(&fks).Error
		if err != nil {
			t.Fatalf("foreign keys of %s: %v", table, err)
		}
		for _, fk := range fks {
			foreignKeys = append(foreignKeys, foreignKey(table, fk.FromCol, fk.RefTable, fk.ToCol, fk.OnDelete))
		}

		var idx []uniqueRow
		err = db.Raw(`SELECT ii.name AS column_name
			FROM pragma_index_list(?) il JOIN pragma_index_info(il.name) ii
			WHERE il."unique" = 1 AND il.origin <> 'pk'`, table).Scan(&idx).Error
		if err != nil {
			t.Fatalf("unique indexes of %s: %v", table, err)
		}
		for _, u := range idx {
			uniques = append(uniques, table+"."+u.ColumnName)
		}
	}

	slices.Sort(foreignKeys)
	slices.Sort(uniques)
	return foreignKeys, uniques
}

func foreignKey(table, column, refTable, refColumn, onDelete string) string {
	return table + "." + column + " -> " + refTable + "." + refColumn + " ON DELETE " + onDelete
}

func TestAutoMigrateMatchesSQLMigration(t *testing.T) {
	db := testutil.DB(t)

	tables, wantFKs, wantUniques := sqlSchema(t)
	if len(tables) == 0 || len(wantFKs) == 0 || len(wantUniques) == 0 {
		t.Fatalf("parsed nothing from the migration: tables=%v fks=%v uniques=%v", tables, wantFKs, wantUniques)
	}

	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			t.Errorf("auto migrate did not create table %s", table)
		}
	}

	gotFKs, gotUniques := sqliteSchema(t, db, tables)
	if !slices.Equal(gotFKs, wantFKs) {
		t.Errorf("foreign keys differ\n got: %v\nwant: %v", gotFKs, wantFKs)
	}
	if !slices.Equal(gotUniques, wantUniques) {
		t.Errorf("unique columns differ\n got: %v\nwant: %v", gotUniques, wantUniques)
	}
}

func TestAppointmentReferencesProfiles(t *testing.T) {
	db := testutil.DB(t)

	fks, _ := sqliteSchema(t, db, []string{"appointments", "patient_profiles", "doctor_profiles"})
	want := []string{
		foreignKey("appointments", "doctor_id", "doctor_profiles", "doctor_id", "SET NULL"),
		foreignKey("appointments", "patient_id", "patient_profiles", "patient_id", "SET NULL"),
		foreignKey("doctor_profiles", "doctor_id", "users", "id", "NO ACTION"),
		foreignKey("patient_profiles", "patient_id", "users", "id", "NO ACTION"),
	}
	if !slices.Equal(fks, want) {
		t.Errorf("unexpected foreign keys\n got: %v\nwant: %v", fks, want)
	}
}

func TestDeletingProfileNullsAppointment(t *testing.T) {
	db := testutil.DB(t)

	patient := testutil.CreateUser(t, db, "Ravi", "Kumar", entity.RoleIDPatient)
	doctor := testutil.CreateUser(t, db, "Sita", "", entity.RoleIDDoctor)
	if err := db.Exec("INSERT INTO patient_profiles (patient_id) VALUES (?)", patient.ID).Error; err != nil {
		t.Fatalf("insert patient profile: %v", err)
	}
	if err := db.Exec("INSERT INTO doctor_profiles (doctor_id) VALUES (?)", doctor.ID).Error; err != nil {
		t.Fatalf("insert doctor profile: %v", err)
	}
	if err := db.Exec("INSERT INTO appointments (patient_id, doctor_id, date_time) VALUES (?, ?, CURRENT_TIMESTAMP)", patient.ID, doctor.ID).Error; err != nil {
		t.Fatalf("insert appointment: %v", err)
	}
	if err := db.Exec("INSERT INTO appointments (patient_id, doctor_id, date_time) VALUES (?, ?, CURRENT_TIMESTAMP)", patient.ID+100, doctor.ID).Error; err == nil {
		t.Error("expected an appointment for an unknown patient profile to be rejected")
	}

	if err := db.Exec("DELETE FROM doctor_profiles WHERE doctor_id = ?", doctor.ID).Error; err != nil {
		t.Fatalf("delete doctor profile: %v", err)
	}

	var rows []struct{ DoctorID *int64 }
	if err := db.Raw("SELECT doctor_id FROM appointments").Scan(&rows).Error; err != nil {
		t.Fatalf("read appointments: %v", err)
	}
	if len(rows) != 1 || rows[0].DoctorID != nil {
		t.Errorf("expected one appointment with a NULL doctor, got %+v", rows)
	}
}

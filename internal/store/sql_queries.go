// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "username", "password_hash", "created_at"}
	noteColumns = []string{"id", "owner_id", "title", "content", "created_at"}
)

func buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(user.TableName()).
		Columns("id", "username", "password_hash").
		Values(user.ID, user.Username, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserByUsernameQuery(username string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := psql.
		Insert(note.TableName()).
		Columns("id", "owner_id", "title", "content").
		Values(note.ID, note.OwnerID, note.Title, note.Content).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectNotesQuery(ownerID string) (string, []any, error) {
	query, args, err := psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectNoteQuery(ownerID, noteID string) (string, []any, error) {
	query, args, err := psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteNoteQuery(ownerID, noteID string) (string, []any, error) {
	query, args, err := psql.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAllNotesQuery(ownerID string) (string, []any, error) {
	query, args, err := psql.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

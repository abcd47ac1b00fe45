package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (user_id, name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByToken = `SELECT u.user_id, u.name, u.email, u.password_hash, u.created_at
    FROM users u
    JOIN user_tokens t ON t.user_id = u.user_id
    WHERE u.user_id = $1 AND t.token = $2 AND t.scope = $3;`

	// Two token issuances for the same user inside one second produce
	// byte-identical signed strings (iat/exp have second precision), so the
	// insert must tolerate an already-present row: the token is live either
	// way.
	addToken = `INSERT INTO user_tokens (user_id, scope, token)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id, token) DO NOTHING;`

	removeToken = `DELETE FROM user_tokens
    WHERE user_id = $1 AND token = $2;`
)

// psql is the statement builder used for all list queries. PostgreSQL
// expects $N placeholders instead of squirrel's default question marks.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// listColumns is the canonical column order scanned into models.List.
var listColumns = []string{"list_id", "name", "creator_id", "created_at"}

func buildCreateListQuery(listID, name, creatorID string) (string, []any, error) {
	return psql.Insert("lists").
		Columns("list_id", "name", "creator_id").
		Values(listID, name, creatorID).
		Suffix("RETURNING list_id, name, creator_id, created_at").
		ToSql()
}

func buildFindListsByOwnerQuery(creatorID string) (string, []any, error) {
	return psql.Select(listColumns...).
		From("lists").
		Where(sq.Eq{"creator_id": creatorID}).
		ToSql()
}

func buildFindListByIDQuery(creatorID, listID string) (string, []any, error) {
	return psql.Select(listColumns...).
		From("lists").
		Where(sq.Eq{"list_id": listID, "creator_id": creatorID}).
		ToSql()
}

func buildUpdateListNameQuery(creatorID, listID, name string) (string, []any, error) {
	return psql.Update("lists").
		Set("name", name).
		Where(sq.Eq{"list_id": listID, "creator_id": creatorID}).
		Suffix("RETURNING list_id, name, creator_id, created_at").
		ToSql()
}

func buildDeleteListQuery(creatorID, listID string) (string, []any, error) {
	return psql.Delete("lists").
		Where(sq.Eq{"list_id": listID, "creator_id": creatorID}).
		Suffix("RETURNING list_id, name, creator_id, created_at").
		ToSql()
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/RafifFarandHariri/jasaku/internal/models"
)

const chatColumns = `id, conversationId, text, isMe, timestamp, type, senderName, serviceId, proposedPrice, offerId`

func scanChat(row interface{ Scan(...any) error }, m *models.ChatMessage) error {
	return row.Scan(&m.ID, &m.ConversationID, &m.Text, &m.IsMe, &m.Timestamp,
		&m.Type, &m.SenderName, &m.ServiceID, &m.ProposedPrice, &m.OfferID)
}

func (r *SQLiteRepo) CreateChat(ctx context.Context, m *models.ChatMessage) error {
	if m == nil {
		return fmt.Errorf("chat message is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO chats (`+chatColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ConversationID, m.Text, m.IsMe, m.Timestamp, m.Type,
		m.SenderName, m.ServiceID, m.ProposedPrice, m.OfferID)
	return err
}

func (r *SQLiteRepo) GetChat(ctx context.Context, id string) (*models.ChatMessage, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+chatColumns+` FROM chats WHERE id = ?`, id)
	var m models.ChatMessage
	if err := scanChat(row, &m); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &m, nil
}

func (r *SQLiteRepo) ListChats(ctx context.Context) ([]models.ChatMessage, error) {
	return r.listChats(ctx, `SELECT `+chatColumns+` FROM chats ORDER BY timestamp DESC`)
}

func (r *SQLiteRepo) ListChatsByConversation(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	return r.listChats(ctx, `SELECT `+chatColumns+` FROM chats WHERE conversationId = ? ORDER BY timestamp ASC`, conversationID)
}

func (r *SQLiteRepo) listChats(ctx context.Context, query string, args ...any) ([]models.ChatMessage, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := scanChat(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

// UpdateChat builds the SET clause from the fixed column whitelist; only
// fields present in the patch are bound. An all-nil patch is a no-op.
func (r *SQLiteRepo) UpdateChat(ctx context.Context, id string, p *models.ChatPatch) error {
	if p == nil {
		return fmt.Errorf("chat patch is nil")
	}

	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if p.ConversationID != nil {
		set("conversationId", *p.ConversationID)
	}
	if p.Text != nil {
		set("text", *p.Text)
	}
	if p.IsMe != nil {
		set("isMe", *p.IsMe)
	}
	if p.Timestamp != nil {
		set("timestamp", *p.Timestamp)
	}
	if p.Type != nil {
		set("type", *p.Type)
	}
	if p.SenderName != nil {
		set("senderName", *p.SenderName)
	}
	if p.ServiceID != nil {
		set("serviceId", *p.ServiceID)
	}
	if p.ProposedPrice != nil {
		set("proposedPrice", *p.ProposedPrice)
	}
	if p.OfferID != nil {
		set("offerId", *p.OfferID)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.conn.Exec(ctx, `UPDATE chats SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

func (r *SQLiteRepo) DeleteChat(ctx context.Context, id string) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM chats WHERE id = ?`, id)
	return err
}

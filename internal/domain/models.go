// Package domain defines the persistence models for authors, sentences,
// entries, and likes. These types are mapped with GORM and form the core
// data layer of the daily-writing journal application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Author represents a registered writer. The demographic brackets feed the
// group resolver; GroupCode holds the derived cohort and is recomputed
// whenever the brackets change (it is not frozen at signup).
//
// Fields:
//   - ID: stable identifier supplied by the auth provider (varchar(64)).
//   - Nickname: display name shown in the public feed.
//   - AgeBracket / GenderBracket: demographic inputs to group resolution.
//   - GroupCode: derived content-cohort code; indexed for feed queries.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type Author struct {
	ID            string         `json:"id"             gorm:"type:varchar(64);primaryKey"`
	Nickname      string         `json:"nickname"       gorm:"type:varchar(64);not null;default:''"`
	AgeBracket    string         `json:"age_bracket"    gorm:"type:varchar(16);not null"`
	GenderBracket string         `json:"gender_bracket" gorm:"type:varchar(16);not null"`
	GroupCode     string         `json:"group_code"     gorm:"type:varchar(16);not null;index:idx_author_group"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"              gorm:"index"`
}

// TableName returns the database table name for Author.
func (Author) TableName() string { return "authors" }

// Sentence is the persisted materialization of one (group, day) content slot.
// Rows are created lazily on first access or eagerly at bootstrap and are
// never deleted; (GroupCode, DayIndex) is the natural key and the unique
// index on it is the only mechanism preventing concurrent duplicate creation.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - GroupCode: content-cohort code; immutable once created.
//   - DayIndex: 1-based position in the group's program; immutable.
//   - Content: the sentence text; may be rewritten by an explicit resync
//     when the catalog's source text changes.
type Sentence struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	GroupCode string         `json:"group_code" gorm:"type:varchar(16);not null;uniqueIndex:ux_sentence_group_day,priority:1"`
	DayIndex  int            `json:"day_index"  gorm:"not null;uniqueIndex:ux_sentence_group_day,priority:2;check:day_index >= 1"`
	Content   string         `json:"content"    gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Sentence.
func (Sentence) TableName() string { return "sentences" }

// Entry is an author's written continuation of one sentence. At most one
// entry exists per (AuthorID, SentenceID); resubmission overwrites Text and
// refreshes CreatedAt rather than creating a new row, so there is no edit
// history.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - AuthorID: owner of the entry (unique per sentence).
//   - SentenceID: the continued sentence (unique per author).
//   - Text: the author's continuation (1..500 runes, enforced upstream).
//   - CreatedAt: submission time, refreshed on every resubmission.
//   - LikeCount: not persisted; computed at query time for feed responses.
type Entry struct {
	ID         string         `json:"id"          gorm:"type:char(36);primaryKey"`
	AuthorID   string         `json:"author_id"   gorm:"type:varchar(64);not null;index;uniqueIndex:ux_entry_author_sentence,priority:1"`
	SentenceID string         `json:"sentence_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_entry_author_sentence,priority:2"`
	Text       string         `json:"text"        gorm:"type:text;not null"`
	LikeCount  int64          `json:"like_count"  gorm:"->;-:migration"`
	CreatedAt  time.Time      `json:"created_at"  gorm:"index"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-"           gorm:"index"`

	// Sentence is the continued content slot. Entries are cascade-deleted
	// if their sentence is removed.
	Sentence Sentence `json:"-" gorm:"foreignKey:SentenceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Entry.
func (Entry) TableName() string { return "entries" }

// Like records one reader's appreciation of an entry. A user may like an
// entry at most once (enforced by unique index); likes on one's own entry
// are rejected at the service layer.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - EntryID: the liked entry (unique per user).
//   - UserID: the liking reader (unique per entry).
type Like struct {
	ID        string         `json:"id"       gorm:"type:char(36);primaryKey"`
	EntryID   string         `json:"entry_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_like_entry_user,priority:1"`
	UserID    string         `json:"user_id"  gorm:"type:varchar(64);not null;index;uniqueIndex:ux_like_entry_user,priority:2"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"        gorm:"index"`

	// Entry is the liked continuation. Likes are cascade-deleted if the
	// underlying entry is removed.
	Entry Entry `json:"-" gorm:"foreignKey:EntryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Like.
func (Like) TableName() string { return "likes" }

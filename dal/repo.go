package dal

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Crimone/Scoparia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks github.com/Crimone/Scoparia/dal IRepo

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type IRepo interface {
	InitUpdateDb()
	GetSubscribers() (map[int]*Subscriber, error)
	UpsertSubscriberConfig(sub *Subscriber) error
	UpsertContact(userId int, username, email string) error
	RemoveSubscriber(userId int) error
	GetMetadata(key string) (val string, found bool, err error)
	SetMetadata(key, val string) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://www.reddit.com/r/golang/comments/16xswxd/concurrency_when_writing_data_into_sqlite/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}
}

func (repo *Repo) GetSubscribers() (map[int]*Subscriber, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT user_id, username, email, push_urls, timezone,
		mention_level, enable_pm, enable_email, enable_push FROM subscribers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[int]*Subscriber)
	for rows.Next() {
		sub := Subscriber{}
		var pushUrls, mentionLevel string
		err = rows.Scan(&sub.UserId, &sub.Username, &sub.Email, &pushUrls, &sub.Timezone,
			&mentionLevel, &sub.EnablePM, &sub.EnableEmail, &sub.EnablePush)
		if err != nil {
			return nil, err
		}
		for _, line := range strings.Split(pushUrls, "\n") {
			if line != "" {
				sub.PushUrls = append(sub.PushUrls, line)
			}
		}
		sub.MentionLevel, _ = ParseMentionLevel(mentionLevel)
		res[sub.UserId] = &sub
	}
	return res, rows.Err()
}

func (repo *Repo) UpsertSubscriberConfig(sub *Subscriber) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO subscribers
		(user_id, username, email, push_urls, timezone, mention_level, enable_pm, enable_email, enable_push)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
		username=excluded.username, email=excluded.email, push_urls=excluded.push_urls,
		timezone=excluded.timezone, mention_level=excluded.mention_level,
		enable_pm=excluded.enable_pm, enable_email=excluded.enable_email, enable_push=excluded.enable_push`,
		sub.UserId, sub.Username, sub.Email, strings.Join(sub.PushUrls, "\n"), sub.Timezone,
		string(sub.MentionLevel), sub.EnablePM, sub.EnableEmail, sub.EnablePush)
	return err
}

// UpsertContact refreshes a subscriber's username and email from the
// contacts dashboard without touching their notification preferences.
func (repo *Repo) UpsertContact(userId int, username, email string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO subscribers (user_id, username, email)
		VALUES(?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET username=excluded.username, email=excluded.email`,
		userId, username, email)
	return err
}

func (repo *Repo) RemoveSubscriber(userId int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM subscribers WHERE user_id=?`, userId)
	return err
}

func (repo *Repo) GetMetadata(key string) (val string, found bool, err error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT val FROM metadata WHERE key=?`, key)
	if err = row.Scan(&val); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (repo *Repo) SetMetadata(key, val string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO metadata (key, val) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET val=excluded.val`, key, val)
	return err
}

package logic

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/Crimone/Scoparia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_blocked_users.go -package mocks github.com/Crimone/Scoparia/logic IBlockedUsers

// IBlockedUsers answers whether a user id is barred from receiving
// notifications. The list lives in a plain text file, one id per line,
// so it can be edited without touching the database.
type IBlockedUsers interface {
	IsBlocked(userId int) (bool, error)
}

type blockedUsers struct {
	cfg *shared.Config
}

func NewBlockedUsers(cfg *shared.Config) IBlockedUsers {
	return &blockedUsers{cfg}
}

func (bu *blockedUsers) IsBlocked(userId int) (bool, error) {

	if bu.cfg.BlockedUsersFile == "" {
		return false, nil
	}
	readFile, err := os.Open(bu.cfg.BlockedUsersFile)
	if err != nil {
		return false, err
	}
	defer readFile.Close()
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)

	for fileScanner.Scan() {
		line := strings.TrimSpace(fileScanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		if id == userId {
			return true, nil
		}
	}
	return false, nil
}

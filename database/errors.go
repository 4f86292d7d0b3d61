package database

import (
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind 存储层错误分类
type Kind int

const (
	// KindUnknown 无法识别的错误
	KindUnknown Kind = iota
	// KindNotFound 记录不存在
	KindNotFound
	// KindForeignKey 外键约束失败（写入缺失引用或删除仍被引用的记录）
	KindForeignKey
	// KindUnavailable 连接失败或连接已断开
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForeignKey:
		return "foreign_key"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// MySQL 外键错误号
const (
	mysqlRowIsReferenced   = 1451
	mysqlNoReferencedRow   = 1452
	mysqlRowIsReferencedV1 = 1217
	mysqlNoReferencedRowV1 = 1216
)

// PostgreSQL foreign_key_violation
const pgForeignKeyViolation = "23503"

// SQLite 结果码
const (
	sqliteConstraint           = 19
	sqliteConstraintForeignKey = 787
)

// sqliteError sqlite 驱动的错误都带有 Code 方法
type sqliteError interface {
	error
	Code() int
}

// Classify 将驱动错误归类
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindForeignKey
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, mysql.ErrInvalidConn):
		return KindUnavailable
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlRowIsReferencedV1, mysqlNoReferencedRowV1:
			return KindForeignKey
		default:
			return KindUnknown
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgForeignKeyViolation {
			return KindForeignKey
		}
		return KindUnknown
	}

	var pgConnectErr *pgconn.ConnectError
	if errors.As(err, &pgConnectErr) {
		return KindUnavailable
	}

	var liteErr sqliteError
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqliteConstraintForeignKey ||
			(code&0xff == sqliteConstraint && strings.Contains(liteErr.Error(), "FOREIGN KEY")) {
			return KindForeignKey
		}
		return KindUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindUnavailable
	}

	return KindUnknown
}

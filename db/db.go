package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init(mysqlDSN, sqliteFile string) {
	var (
		db  *gorm.DB
		err error
	)
	conf := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true, // duplicate slugs must surface as gorm.ErrDuplicatedKey
	}
	if mysqlDSN != "" {
		db, err = gorm.Open(mysql.Open(mysqlDSN), conf)
	} else {
		db, err = gorm.Open(sqlite.Open(sqliteFile), conf)
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}

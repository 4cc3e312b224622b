package config

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"
)

// 动画包（bbolt 数据库）中的 bucket 名称
var (
	packBucketGlobal       = []byte("global")
	packBucketSheets       = []byte("sheets")
	packBucketAnimations   = []byte("animations")
	packBucketFxAnimations = []byte("fx_animations")
)

var packGlobalKey = []byte("config")

// packOpenTimeout 打开动画包时等待文件锁的最长时间
const packOpenTimeout = time.Second

// SavePack 将动画集配置写入 bbolt 动画包
//
// 每个精灵表、动画各占一条记录，值为 YAML 编码。
// 动画记录的键为递增序号，加载时保持原有顺序。
// 目标文件已存在时会被覆盖。
func SavePack(path string, cfg *AnimationSetConfig) error {
	if err := ValidateAnimationSet(cfg); err != nil {
		return fmt.Errorf("验证失败: %w", err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("无法删除旧动画包 %s: %w", path, err)
	}

	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: packOpenTimeout})
	if err != nil {
		return fmt.Errorf("无法打开动画包 %s: %w", path, err)
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		// 1. 全局配置
		globalBucket, err := tx.CreateBucketIfNotExists(packBucketGlobal)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(&cfg.Global)
		if err != nil {
			return fmt.Errorf("无法编码全局配置: %w", err)
		}
		if err := globalBucket.Put(packGlobalKey, data); err != nil {
			return err
		}

		// 2. 精灵表
		sheetBucket, err := tx.CreateBucketIfNotExists(packBucketSheets)
		if err != nil {
			return err
		}
		for i := range cfg.Sheets {
			if err := putSequenced(sheetBucket, &cfg.Sheets[i]); err != nil {
				return fmt.Errorf("精灵表 '%s': %w", cfg.Sheets[i].ID, err)
			}
		}

		// 3. 动画
		for _, group := range []struct {
			name []byte
			defs []AnimationDef
		}{
			{packBucketAnimations, cfg.Animations},
			{packBucketFxAnimations, cfg.FxAnimations},
		} {
			bucket, err := tx.CreateBucketIfNotExists(group.name)
			if err != nil {
				return err
			}
			for i := range group.defs {
				if err := putSequenced(bucket, &group.defs[i]); err != nil {
					return fmt.Errorf("动画 '%s': %w", group.defs[i].Name, err)
				}
			}
		}
		return nil
	})
}

// LoadPack 从 bbolt 动画包读取动画集配置
func LoadPack(path string) (*AnimationSetConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("无法读取动画包 %s: %w", path, err)
	}

	db, err := bolt.Open(path, 0o444, &bolt.Options{Timeout: packOpenTimeout, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("无法打开动画包 %s: %w", path, err)
	}
	defer db.Close()

	cfg := &AnimationSetConfig{}
	err = db.View(func(tx *bolt.Tx) error {
		globalBucket := tx.Bucket(packBucketGlobal)
		if globalBucket == nil {
			return fmt.Errorf("the %s bucket not found", packBucketGlobal)
		}
		if data := globalBucket.Get(packGlobalKey); data != nil {
			if err := yaml.Unmarshal(data, &cfg.Global); err != nil {
				return fmt.Errorf("无法解析全局配置: %w", err)
			}
		}

		if err := readSequenced(tx, packBucketSheets, &cfg.Sheets); err != nil {
			return err
		}
		if err := readSequenced(tx, packBucketAnimations, &cfg.Animations); err != nil {
			return err
		}
		// 旧的动画包可能没有 FX bucket
		if tx.Bucket(packBucketFxAnimations) != nil {
			if err := readSequenced(tx, packBucketFxAnimations, &cfg.FxAnimations); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("动画包 %s: %w", path, err)
	}

	if err := ValidateAnimationSet(cfg); err != nil {
		return nil, fmt.Errorf("动画包 %s 验证失败: %w", path, err)
	}
	return cfg, nil
}

func putSequenced(bucket *bolt.Bucket, value any) error {
	seq, err := bucket.NextSequence()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	return bucket.Put(itob(seq), data)
}

func readSequenced[T any](tx *bolt.Tx, name []byte, out *[]T) error {
	bucket := tx.Bucket(name)
	if bucket == nil {
		return fmt.Errorf("the %s bucket not found", name)
	}
	return bucket.ForEach(func(k, v []byte) error {
		var item T
		if err := yaml.Unmarshal(v, &item); err != nil {
			return fmt.Errorf("%s/%d: %w", name, binary.BigEndian.Uint64(k), err)
		}
		*out = append(*out, item)
		return nil
	})
}

// itob 大端编码，保证 bbolt 按插入顺序遍历
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

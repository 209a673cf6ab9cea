package idgen

import "testing"

func TestMain(m *testing.M) {
	if err := InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestGenerateAndDecodePublicID(t *testing.T) {
	cases := []struct {
		name       string
		dbID       uint
		entityType uint64
	}{
		{"post", 1, EntityTypePost},
		{"category", 42, EntityTypeCategory},
		{"user", 7, EntityTypeUser},
		{"large id", 1 << 30, EntityTypeImage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			publicID, err := GeneratePublicID(tc.dbID, tc.entityType)
			if err != nil {
				t.Fatalf("GeneratePublicID: %v", err)
			}
			if len(publicID) < 4 {
				t.Errorf("公共 ID '%s' 短于最小长度", publicID)
			}

			dbID, entityType, err := DecodePublicID(publicID)
			if err != nil {
				t.Fatalf("DecodePublicID: %v", err)
			}
			if dbID != tc.dbID || entityType != tc.entityType {
				t.Errorf("往返结果不一致: got (%d, %d), want (%d, %d)", dbID, entityType, tc.dbID, tc.entityType)
			}
		})
	}
}

func TestDecodePublicID_InvalidInput(t *testing.T) {
	for _, input := range []string{"", "!", "00000000-0000-0000-0000-000000000000"} {
		if _, _, err := DecodePublicID(input); err == nil {
			t.Errorf("DecodePublicID(%q) 应当返回错误", input)
		}
	}
}

func TestPublicIDsDifferByEntityType(t *testing.T) {
	postID, err := GeneratePublicID(1, EntityTypePost)
	if err != nil {
		t.Fatal(err)
	}
	categoryID, err := GeneratePublicID(1, EntityTypeCategory)
	if err != nil {
		t.Fatal(err)
	}
	if postID == categoryID {
		t.Errorf("相同内部 ID 的不同实体类型不应得到相同的公共 ID: %s", postID)
	}
}

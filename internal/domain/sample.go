package domain

// SampleTags seeds a tag forest with a small example hierarchy:
//
//	work (pinned) ── design ── ui, branding
//	             ├── meetings
//	             └── tasks
//	personal ── fitness, reading, recipes
//	ideas
func SampleTags(f *Forest[TagMeta]) error {
	work := f.CreateRoot("work", TagMeta{Icon: Emoji("💼"), Pinned: true})
	personal := f.CreateRoot("personal", TagMeta{Icon: Emoji("🏠")})
	f.CreateRoot("ideas", TagMeta{Icon: Emoji("💡")})

	children := []struct {
		parent NodeID
		name   string
		icon   Icon
	}{
		{work, "design", Emoji("🎨")},
		{work, "meetings", Emoji("📅")},
		{work, "tasks", Symbol("checklist")},
		{personal, "fitness", Emoji("🏋️")},
		{personal, "reading", Emoji("📚")},
		{personal, "recipes", Emoji("🍳")},
	}

	var design NodeID
	for _, c := range children {
		id, err := f.CreateChild(c.parent, c.name, TagMeta{Icon: c.icon})
		if err != nil {
			return err
		}
		if c.name == "design" {
			design = id
		}
	}

	if _, err := f.CreateChild(design, "ui", TagMeta{Icon: Symbol("paintbrush")}); err != nil {
		return err
	}
	if _, err := f.CreateChild(design, "branding", TagMeta{Icon: Symbol("star")}); err != nil {
		return err
	}
	return nil
}

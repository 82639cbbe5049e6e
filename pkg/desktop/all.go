package desktop

// All returns every recognized desktop environment in enumeration order.
func All() []DesktopEnvironment {
	all := make([]DesktopEnvironment, 0, len(names))
	for de := Cinnamon; de <= Xfce; de++ {
		all = append(all, de)
	}
	return all
}

package convert

const (
	DbgLoad = 1 << iota
	DbgJoin
	DbgEmit
	DbgFlagAll = DbgLoad | DbgJoin | DbgEmit
)

var (
	debugLoad bool
	debugJoin bool
	debugEmit bool
)

func SetDebug(flag int) {
	debugLoad = (flag & DbgLoad) != 0
	debugJoin = (flag & DbgJoin) != 0
	debugEmit = (flag & DbgEmit) != 0
}

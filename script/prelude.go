package script

// prelude opens the compiled stylesheet function and defines its helpers.
// Free variable __svc__ is bound to *Services by the enclosing closure.
const prelude = `return (function (__root__, args = {}) {

function __scriptPrivilege__(item) {
  return __svc__.GetScriptPrivilege(item);
}

function __isProxy__(item) {
  return item !== null && typeof item === 'object' && '__isProxy__' in item && item['__isProxy__'];
}

function __wrap__(item) {
  if (__isProxy__(item)) {
    return item;
  }
  return __writable__(__svc__.AsScriptable(item));
}

__wrap__.readonly = function (item) {
  if (__isProxy__(item)) {
    return item;
  }
  return __readable__(__svc__.AsScriptable(item));
};

function __unwrap__(item) {
  if (__isProxy__(item)) {
    return item.__element__;
  }
  return item;
}

function __readable__(item) {
  if (__scriptPrivilege__(item) === 0) {
    return item;
  }
  return new Proxy(item, {
    has() {
      return true;
    },
    get(target, key) {
      if (typeof key !== 'string') {
        return undefined;
      }
      if (key === '__isProxy__') {
        return true;
      }
      if (key === '__element__') {
        return target;
      }
      return __readable__(target.Get(key));
    },
    set(target, key, value) {
      return true;
    },
    deleteProperty(target, key) {
      return true;
    }
  });
}

function __writable__(item) {
  const level = __scriptPrivilege__(item);
  if (level === 0) {
    return item;
  }
  return new Proxy(item, {
    has() {
      return true;
    },
    get(target, key) {
      if (typeof key !== 'string') {
        return undefined;
      }
      if (key === '__isProxy__') {
        return true;
      }
      if (key === '__element__') {
        return target;
      }
      return __writable__(target.Get(key));
    },
    set(target, key, value) {
      if (level >= 2 && typeof key === 'string') {
        target.Set(key, value);
      }
      return true;
    },
    deleteProperty(target, key) {
      if (level >= 3 && typeof key === 'string') {
        target.Delete(key);
      }
      return true;
    }
  });
}

function __visit__(root, selector, callback, predicates = []) {
  __svc__.VisitScript(__unwrap__(root), selector, function (item) {
    const wrapped = __wrap__(item);
    callback.call(wrapped, wrapped);
  }, ...predicates.map(function (predicate) {
    return function (node) {
      return predicate.call(__wrap__.readonly(node));
    };
  }));
}

function __rule__(root, id) {
  __svc__.VisitRule(__unwrap__(root), id);
}

function __set__(root, key, value) {
  __svc__.Assign(__unwrap__(root), key, value);
}
`

// epilogue closes the function opened by prelude.
const epilogue = "});\n"
